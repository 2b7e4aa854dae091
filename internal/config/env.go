package config

import "time"

// Env key constants. All controller configuration env vars use DUMMY_ prefix;
// duration values support explicit units (e.g. 5m, 40s, 2h).

// Path to kubeconfig file. If unset, KUBECONFIG is used as fallback.
const envKeyKubeConfig = "DUMMY_KUBECONFIG"

// Kubernetes API server URL. If unset, KUBERNETES_MASTER is used as fallback.
const envKeyKubeMaster = "DUMMY_KUBE_MASTER"

// Log level: debug, info, warn, error.
const envKeyLogLevel = "DUMMY_LOG_LEVEL"

// Log format: json or text.
const envKeyLogFormat = "DUMMY_LOG_FORMAT"

// Port for health/readiness HTTP server.
const envKeyHTTPPort = "DUMMY_HTTP_PORT"

// Port for Prometheus metrics (GET /metrics).
const envKeyMetricsPort = "DUMMY_METRICS_PORT"

// Display name of the primary kind. Used as the Deployment label key and the
// custom resource definition lookup, so health reports DOWN unless it equals the
// CRD kind. Owner references always use the Dummy API kind.
const envKeyKindName = "DUMMY_KIND_NAME"

// Namespace to watch; empty watches all namespaces.
const envKeyNamespace = "DUMMY_NAMESPACE"

// Labels attached to every emitted event, as k=v pairs separated by commas.
const envKeyOperatorLabels = "DUMMY_OPERATOR_LABELS"

// Cron expression for full sweeps of the Dummy cache; empty disables sweeping.
const envKeySweepSchedule = "DUMMY_SWEEP_SCHEDULE"

// Dummy informer resync period. Deployments resync at twice this value.
const (
	envKeyResyncPeriod = "DUMMY_RESYNC_PERIOD"
	envMinResyncPeriod = time.Second
)

// Pinger check interval. Units: s, m, h (e.g. 10s, 1m).
const (
	envKeyPingerInterval = "DUMMY_PINGER_INTERVAL"
	envMinPingerInterval = time.Second
)

// Standard k8s env keys used as fallback when DUMMY_* are unset.
const (
	envKeyKubeConfigFallback = "KUBECONFIG"
	envKeyKubeMasterFallback = "KUBERNETES_MASTER"
)

const (
	defaultLogLevel       = "info"
	defaultLogFormat      = "json"
	defaultHTTPPort       = "8080"
	defaultMetricsPort    = "9090"
	defaultKindName       = "Dummy"
	defaultOperatorLabels = "xgeeks=Dummy"
	defaultResyncPeriod   = 30 * time.Second
	defaultPingerInterval = 10 * time.Second
)
