package fsmx

import (
	"bytes"
	"fmt"
	"sort"
)

// ExportDOT renders the machine as Graphviz DOT source for external layout
// tools (e.g. https://webgraphviz.com).
//
// Every state of the configured state enumeration gets a node; when none was
// configured, the registered states are used. Transitions are deduplicated
// by (from, to, action), so a range registration sharing one EventData
// yields a single edge, and entries with no transition draw no edge at all.
// With showAnywhere false, wildcard transitions are attributed to every
// registered concrete state; with true they hang off a single "anywhere"
// node. Output lines are sorted, so the export is deterministic.
func (m *Machine[A, S, E]) ExportDOT(showAnywhere bool) string {
	var buf bytes.Buffer
	buf.WriteString("strict digraph StateMachine {\n")
	fmt.Fprintf(&buf, "\"start\" -> \"%v\"\n", m.initial)

	states := m.stateSet
	if len(states) == 0 {
		states = make([]S, 0, len(m.states))
		for s := range m.states {
			states = append(states, s)
		}
		sort.Slice(states, func(i, j int) bool {
			return fmt.Sprint(states[i]) < fmt.Sprint(states[j])
		})
	}
	for _, s := range states {
		fmt.Fprintf(&buf, "\"%v\" [shape=box, style=rounded];\n", s)
	}

	type edge struct {
		from, to, label string
		labeled         bool
	}
	seen := make(map[edge]struct{})
	add := func(from string, data *EventData[A, S]) {
		to, ok := data.Next.Get()
		if !ok {
			// No transition, no edge.
			return
		}
		e := edge{from: from, to: fmt.Sprint(to)}
		if a, ok := data.Action.Get(); ok {
			e.label = fmt.Sprint(a)
			e.labeled = true
		}
		seen[e] = struct{}{}
	}

	for s, data := range m.states {
		from := fmt.Sprint(s)
		if !showAnywhere && m.anywhere != nil {
			for _, ed := range m.anywhere.events {
				add(from, ed)
			}
		}
		for _, ed := range data.events {
			add(from, ed)
		}
	}
	if showAnywhere && m.anywhere != nil {
		for _, ed := range m.anywhere.events {
			add("anywhere", ed)
		}
	}

	lines := make([]string, 0, len(seen))
	for e := range seen {
		if e.labeled {
			lines = append(lines, fmt.Sprintf("%q -> %q [label=%q];", e.from, e.to, e.label))
		} else {
			lines = append(lines, fmt.Sprintf("%q -> %q", e.from, e.to))
		}
	}
	sort.Strings(lines)
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	buf.WriteString("}\n")
	return buf.String()
}
