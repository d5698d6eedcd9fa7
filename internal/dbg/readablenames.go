package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// Readable names for hull vertices and closest pair endpoints, used for
// rendering labels and debug logs. Pass points by value: names are memoized by
// value, so equal coordinates always get the same name within a run. A pointer
// is named by its address, not by what it points to. Keys must be comparable.
//
// Names are never forgotten, so don't feed this an unbounded stream of values.

const nilName = "Ø"

var (
	mu   sync.Mutex
	memo = make(map[interface{}]string)
)

func init() {
	// Names are handed out in order of demand, so they change between runs
	// anyway. Randomizing them makes that obvious.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if isNil(obj) {
		return nilName
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}

func isNil(obj interface{}) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
