package model

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=MemberKind -linecomment -output=memberkind_string.go
//go:generate go tool stringer -type=ParamMode -linecomment -output=parammode_string.go
//go:generate go tool stringer -type=AsyncShape -linecomment -output=asyncshape_string.go
//go:generate go tool stringer -type=BindingKind -linecomment -output=bindingkind_string.go
//go:generate go tool stringer -type=Accessibility -linecomment -output=accessibility_string.go
//go:generate go tool stringer -type=Adaptation -linecomment -output=adaptation_string.go

// MemberKind is the declaration kind of a contract member.
type MemberKind int

const (
	MemberMethod   MemberKind = iota // method
	MemberProperty                   // property
	MemberIndexer                    // indexer
)

// ParamMode is the parameter-passing mode.
type ParamMode int

const (
	ParamByValue ParamMode = iota // value
	ParamRef                      // ref
	ParamOut                      // out
	ParamIn                       // in
)

// AsyncShape describes how a result is delivered.
type AsyncShape int

const (
	AsyncNone      AsyncShape = iota // sync
	AsyncTask                        // task
	AsyncValueTask                   // valuetask
)

// IsAsync reports whether the shape is one of the asynchronous encodings.
func (a AsyncShape) IsAsync() bool {
	return a != AsyncNone
}

// BindingKind records which precedence level produced a binding.
type BindingKind int

const (
	BindExplicit    BindingKind = iota // explicit
	BindByName                         // by_name
	BindBySignature                    // by_signature
)

// Accessibility of a contract member.
type Accessibility int

const (
	AccessPublic   Accessibility = iota // public
	AccessInternal                      // internal
)

// Adaptation is the async glue the emitter inserts between a candidate's
// result shape and a member's result shape.
type Adaptation int

const (
	AdaptNone   Adaptation = iota // none
	AdaptWrap                     // wrap
	AdaptRewrap                   // rewrap
)

// ParseMemberKind parses a member kind name as used in synthesis files.
func ParseMemberKind(s string) (MemberKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "method":
		return MemberMethod, nil
	case "property":
		return MemberProperty, nil
	case "indexer":
		return MemberIndexer, nil
	default:
		return MemberMethod, fmt.Errorf("unknown member kind %q", s)
	}
}

// ParseParamMode parses a parameter mode name.
func ParseParamMode(s string) (ParamMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "value", "byvalue", "by_value":
		return ParamByValue, nil
	case "ref":
		return ParamRef, nil
	case "out":
		return ParamOut, nil
	case "in":
		return ParamIn, nil
	default:
		return ParamByValue, fmt.Errorf("unknown parameter mode %q", s)
	}
}

// ParseAsyncShape parses an async shape name.
func ParseAsyncShape(s string) (AsyncShape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sync", "none":
		return AsyncNone, nil
	case "task":
		return AsyncTask, nil
	case "valuetask", "value_task":
		return AsyncValueTask, nil
	default:
		return AsyncNone, fmt.Errorf("unknown async shape %q", s)
	}
}
