// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package overlay

import (
	"errors"
	"fmt"
)

// UnavailableErr means no overlay can be built for a project and the
// real accessor should be used as-is.
type UnavailableErr struct {
	Path   string
	Reason string
	Err    error
}

func (e *UnavailableErr) Error() string {
	msg := fmt.Sprintf("overlay unavailable for %s: %s", e.Path, e.Reason)
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", msg, e.Err)
	}
	return msg
}

func (e *UnavailableErr) Unwrap() error {
	return e.Err
}

func IsUnavailable(err error) bool {
	var ue *UnavailableErr
	return errors.As(err, &ue)
}
