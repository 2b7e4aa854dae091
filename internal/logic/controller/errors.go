package controller

import "errors"

var (
	ErrCreateDeployment  = errors.New("create deployment")
	ErrEditDeployment    = errors.New("edit deployment")
	ErrPatchStatus       = errors.New("patch status")
	ErrEmitEvent         = errors.New("emit event")
	ErrKindNotRegistered = errors.New("custom resource kind not registered")
	ErrNotSynced         = errors.New("caches not synced")
)
