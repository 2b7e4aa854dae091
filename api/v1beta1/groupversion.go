// Package v1beta1 contains the Dummy custom resource types of the xgeeks.ki.com API group.
package v1beta1

import (
	"k8s.io/apimachinery/pkg/runtime/schema"
)

const (
	Group    = "xgeeks.ki.com"
	Version  = "v1beta1"
	Kind     = "Dummy"
	Resource = "dummies"
)

var (
	// SchemeGroupVersion is the group version used to register these objects.
	SchemeGroupVersion = schema.GroupVersion{Group: Group, Version: Version}

	// GroupVersionResource identifies dummies for the dynamic client.
	GroupVersionResource = SchemeGroupVersion.WithResource(Resource)
)
