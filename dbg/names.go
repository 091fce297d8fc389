// Package dbg assigns readable throwaway names to geometry objects while
// tracing the clipping code. Pointer strings are useless when a stitching
// trace mentions the same edge twenty times; a generated two-word name is
// easy to follow. Names are memoized per object and generated lazily, so
// the memo only grows when tracing is actually turned on.
package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

var names map[interface{}]string

func init() {
	names = make(map[interface{}]string)
	// Names are handed out in demand order, so runs are not comparable
	// anyway; make that obvious by randomizing.
	petname.NonDeterministicMode()
}

// Name returns the memoized readable name for obj, generating one on first
// use. Nil pointers all share a single marker name.
func Name(obj interface{}) string {
	if v := reflect.ValueOf(obj); v.Kind() == reflect.Ptr && v.IsNil() {
		return "<nil>"
	}
	if n, ok := names[obj]; ok {
		return n
	}
	n := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	names[obj] = n
	return n
}
