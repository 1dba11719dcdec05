package network

import (
	"errors"
	"fmt"

	"github.com/yumyai/netalign/pkg/model"
)

var ErrUnknownProtein = errors.New("protein does not exist in the network")

// UnknownProteinError reports a query gene missing from a species network.
type UnknownProteinError struct {
	Species model.Species
	GeneID  string
}

func (e *UnknownProteinError) Error() string {
	return fmt.Sprintf("protein %d (%s) does not exist in the network--input a different protein", int(e.Species), e.GeneID)
}

func (e *UnknownProteinError) Unwrap() error {
	return ErrUnknownProtein
}
