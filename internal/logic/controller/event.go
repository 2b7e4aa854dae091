package controller

import (
	"maps"
	"time"

	eventsv1 "k8s.io/api/events/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/skillcoder/dummy-controller/api/v1beta1"
)

// GenerateEvent builds the audit event recorded after a create or edit of the child Deployment.
func GenerateEvent(
	dummy *v1beta1.Dummy,
	action string,
	labels map[string]string,
	now time.Time,
) *eventsv1.Event {
	regarding := dummy.ObjectReference()

	return &eventsv1.Event{
		ObjectMeta: metav1.ObjectMeta{
			GenerateName:    dummy.Name + "-" + action + "-",
			Namespace:       dummy.Namespace,
			Labels:          maps.Clone(labels),
			OwnerReferences: []metav1.OwnerReference{dummy.OwnerReference()},
		},
		// MicroTime serializes with microsecond precision.
		EventTime:           metav1.NewMicroTime(now.Truncate(time.Microsecond)),
		Type:                eventTypeNormal,
		Action:              action,
		Reason:              action,
		Note:                dummy.Spec.String(),
		ReportingController: ControllerName,
		ReportingInstance:   ControllerName,
		Regarding:           regarding,
	}
}
