// Package status carries the tagged outcome every mutating repository
// operation returns in place of an error for expected business conditions.
package status

import (
	"fmt"
	"strings"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

type Status struct {
	Kind   Kind   `json:"kind"`
	Detail string `json:"detail"`
}

func Successf(format string, args ...any) Status {
	return Status{Kind: KindSuccess, Detail: fmt.Sprintf(format, args...)}
}

func Warningf(format string, args ...any) Status {
	return Status{Kind: KindWarning, Detail: fmt.Sprintf(format, args...)}
}

func Errorf(format string, args ...any) Status {
	return Status{Kind: KindError, Detail: fmt.Sprintf(format, args...)}
}

func (s Status) OK() bool {
	return s.Kind == KindSuccess
}

// String renders the pipe-delimited form consumed by the presentation layer.
func (s Status) String() string {
	return string(s.Kind) + "|" + s.Detail
}

// Parse splits a "kind|detail" string back into a Status. It is the
// consumer-side counterpart of String for presentation layers that receive
// the pipe-delimited form; the service itself never reads statuses back in.
// Unknown or missing kinds come back as error-kind so a mangled message is
// never shown as success.
func Parse(raw string) Status {
	kind, detail, found := strings.Cut(raw, "|")
	if !found {
		return Status{Kind: KindError, Detail: raw}
	}
	switch Kind(kind) {
	case KindSuccess, KindWarning, KindError:
		return Status{Kind: Kind(kind), Detail: detail}
	}
	return Status{Kind: KindError, Detail: raw}
}
