package fsmx_test

import (
	"fmt"

	"github.com/fsmx/fsmx"
)

// A door that locks from anywhere: the wildcard table catches the "lock"
// event no matter which state the machine is in.
func Example() {
	handler := fsmx.HandlerFuncs[string, string, string]{
		Entry: func(state, action string) {
			fmt.Printf("entering %s: %s\n", state, action)
		},
		Event: func(state, event, action string) {
			fmt.Printf("in %s, %s: %s\n", state, event, action)
		},
	}

	m, err := fsmx.New("closed", handler)
	if err != nil {
		panic(err)
	}

	m.AddState("closed", fsmx.None[string](), fsmx.None[string](), func(sd *fsmx.StateData[string, string, string]) error {
		return sd.AddEvent("open", fsmx.Some("creak"), fsmx.Some("open"))
	})
	m.AddState("open", fsmx.Some("announce"), fsmx.None[string](), func(sd *fsmx.StateData[string, string, string]) error {
		return sd.AddEvent("close", fsmx.None[string](), fsmx.Some("closed"))
	})
	m.AddState("locked", fsmx.Some("click"), fsmx.None[string](), nil)
	m.AddAnywhere(func(sd *fsmx.StateData[string, string, string]) error {
		return sd.AddEvent("lock", fsmx.None[string](), fsmx.Some("locked"))
	})

	m.HandleEvent("open")
	m.HandleEvent("close")
	m.HandleEvent("lock")
	fmt.Println("now:", m.Current())

	// Output:
	// in closed, open: creak
	// entering open: announce
	// entering locked: click
	// now: locked
}
