package v1beta1

import (
	"fmt"
	"slices"
	"strings"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"
)

// DummySpec is the desired state declared by the user.
type DummySpec struct {
	Quote        string   `json:"quote"`
	SleepSeconds int32    `json:"sleep"`
	Replicas     int32    `json:"replicas"`
	ExtraArgs    []string `json:"extra,omitempty"`
}

// DummyStatus is written by the controller only.
type DummyStatus struct {
	TimesChanged int32 `json:"timesChanged"`
}

// Dummy is the primary resource reconciled into a Deployment.
type Dummy struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   DummySpec    `json:"spec"`
	Status *DummyStatus `json:"status,omitempty"`
}

// Equal reports whether both specs hold the same values; extra args are compared in order.
func (s DummySpec) Equal(other DummySpec) bool {
	return s.Quote == other.Quote &&
		s.SleepSeconds == other.SleepSeconds &&
		s.Replicas == other.Replicas &&
		slices.Equal(s.ExtraArgs, other.ExtraArgs)
}

// String renders the spec the way it is recorded in event notes.
func (s DummySpec) String() string {
	return fmt.Sprintf("DummySpec{quote=%s,sleep=%d,replicas=%d,extra=%s}",
		s.Quote,
		s.SleepSeconds,
		s.Replicas,
		strings.Join(s.ExtraArgs, " "),
	)
}

// Key returns the "<namespace>/<name>" work item key.
func (d *Dummy) Key() string {
	return d.Namespace + "/" + d.Name
}

// OwnerReference points a dependent object at this Dummy as its controller.
func (d *Dummy) OwnerReference() metav1.OwnerReference {
	return metav1.OwnerReference{
		APIVersion: SchemeGroupVersion.String(),
		Kind:       Kind,
		Name:       d.Name,
		UID:        d.UID,
		Controller: ptr.To(true),
	}
}

// ObjectReference is used as the regarding object of audit events.
func (d *Dummy) ObjectReference() corev1.ObjectReference {
	return corev1.ObjectReference{
		APIVersion: SchemeGroupVersion.String(),
		Kind:       Kind,
		Name:       d.Name,
		Namespace:  d.Namespace,
		UID:        d.UID,
	}
}
