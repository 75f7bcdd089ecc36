// Copyright (c) 2016 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errorpanic

import (
	"runtime"

	"import.name/pan"
)

// Handle a recovered panic value.  Buffer capacity panics and other
// in-module error panics are converted to errors; runtime errors and
// foreign panic values are re-panicked.
func Handle(x interface{}) (err error) {
	if x == nil {
		return
	}

	err, _ = x.(error)
	if err != nil {
		if _, ok := err.(runtime.Error); ok {
			panic(x)
		}
		return
	}

	err = pan.Error(x)
	if err == nil {
		panic(x)
	}
	return
}
