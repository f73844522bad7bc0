// Package dbg gives pointers readable, memorable names for debug output, so
// that "Field BraveOtter" can be told apart from "Field CalmHeron" in logs
// without squinting at addresses.
package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// Names are generated lazily on first request and never forgotten. Since the
// ids are generated in order of demand, they are nondeterministic, to remind
// the user that the same name doesn't refer to the same thing between runs.

var (
	mu   sync.Mutex
	memo = make(map[interface{}]string)
)

func init() {
	petname.NonDeterministicMode()
}

// Name returns the readable name for obj, which should be a pointer. Nil
// pointers are "Ø". Values that can't be map keys fall back to %v.
func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	value := reflect.ValueOf(obj)
	switch value.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.Slice:
		if value.IsNil() {
			return "Ø"
		}
	}
	if !value.Type().Comparable() {
		return fmt.Sprintf("%v", obj)
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := title(petname.Adjective()) + title(petname.Name())
	memo[obj] = r
	return r
}

func title(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
