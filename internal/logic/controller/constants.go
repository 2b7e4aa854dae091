package controller

const (
	// ControllerName is reported as the controller and instance on emitted events.
	ControllerName = "dummycontroller"

	ContainerImage        = "busybox"
	containerNameSuffix   = "-container"
	containerShell        = "/bin/sh"
	containerShellCommand = "-c"

	ActionCreating = "creating"
	ActionEditing  = "editing"

	eventTypeNormal = "Normal"

	healthDetailKey          = "Dummy Custom Resource Definition"
	healthDetailAvailable    = "Available"
	healthDetailNotAvailable = "Not Available"

	// defaultReplicas is what the API server defaults an unset Deployment replica count to.
	defaultReplicas int32 = 1
)
