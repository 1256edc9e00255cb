/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Command build holds the repository's build tasks:
//
//	go run ./build          # vet, names, test
//	go run ./build names    # only the name table gate
package main

import (
	"os"
	"os/exec"

	"dirpx.dev/gdferr/code"
	"github.com/goyek/goyek/v2"
)

func goCmd(a *goyek.A, args ...string) {
	cmd := exec.CommandContext(a.Context(), "go", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		a.Error(err)
	}
}

var vet = goyek.Define(goyek.Task{
	Name:  "vet",
	Usage: "Run go vet on all packages",
	Action: func(a *goyek.A) {
		goCmd(a, "vet", "./...")
	},
})

var names = goyek.Define(goyek.Task{
	Name:  "names",
	Usage: "Fail when an error code has no registered name",
	Action: func(a *goyek.A) {
		missing := code.Missing()
		for _, c := range missing {
			a.Errorf("code %d has no registered name", int32(c))
		}
		if len(missing) == 0 {
			a.Log("name table complete")
		}
	},
})

var test = goyek.Define(goyek.Task{
	Name:  "test",
	Usage: "Run tests with the race detector",
	Action: func(a *goyek.A) {
		goCmd(a, "test", "-race", "./...")
	},
})

var all = goyek.Define(goyek.Task{
	Name:  "all",
	Usage: "Run every check",
	Deps:  goyek.Deps{vet, names, test},
})

func main() {
	goyek.SetDefault(all)
	goyek.Main(os.Args[1:])
}
