package controller

import "github.com/skillcoder/dummy-controller/api/v1beta1"

// UpdateStatus returns a copy of dummy with a fresh status, or with
// timesChanged incremented when a status already exists.
func UpdateStatus(dummy *v1beta1.Dummy) *v1beta1.Dummy {
	out := dummy.DeepCopy()

	if out.Status == nil {
		out.Status = &v1beta1.DummyStatus{}

		return out
	}

	out.Status.TimesChanged++

	return out
}
