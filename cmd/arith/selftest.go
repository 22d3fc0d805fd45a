package main

// selfTests are scenarios with known results. An empty want means the
// expression must fail.
var selfTests = []struct {
	src  string
	want string
}{
	{"2 + 3", "5"},
	{"10 - 4", "6"},
	{"2 + 3 * 4", "14"},
	{"(2 + 3) * 4", "20"},
	{"10 - 4 - 1", "5"},
	{"10 / 2", "5.0"},
	{"8 / (2 + 2)", "2.0"},
	{"7 + 3 * (10 / (12 / (3 + 1) - 1))", "22.0"},
	{"(1 + 2) * (3 + 4)", "21"},
	{"(10 - (2 + 3)) * 2", "10"},
	{"2 + * 3", ""},
	{"(4 + 5", ""},
	{"2 & 3", ""},
	{"5 / 0", ""},
}

// selftest evaluates every scenario, prints a line for each, and returns the
// number of failures.
func (a *app) selftest() int {
	failed := 0
	for _, c := range selfTests {
		v, err := a.eval(c.src)
		switch {
		case err != nil && c.want == "":
			a.pr.ok.Fprintf(a.out, "[OK] %s -> expected %s: %v\n", c.src, kindOf(err), err)
		case err != nil:
			failed++
			a.pr.bad.Fprintf(a.out, "[FAIL] %s -> %s: %v, want %s\n", c.src, kindOf(err), err, c.want)
		case c.want == "":
			failed++
			a.pr.bad.Fprintf(a.out, "[FAIL] %s -> %v, want an error\n", c.src, v)
		case v.String() != c.want:
			failed++
			a.pr.bad.Fprintf(a.out, "[FAIL] %s -> %v, want %s\n", c.src, v, c.want)
		default:
			a.pr.ok.Fprintf(a.out, "[OK] %s = %v\n", c.src, v)
		}
	}
	a.pr.note.Fprintf(a.out, "%d/%d passed\n", len(selfTests)-failed, len(selfTests))
	return failed
}
