package rop

import (
	"errors"
	"testing"
)

type person struct {
	Name string
	Age  int
}

func panicValue(f func()) (v interface{}) {
	defer func() { v = recover() }()
	f()
	return nil
}

func expectUsage(t *testing.T, v interface{}, target error) *UsageError {
	t.Helper()
	ue, ok := v.(*UsageError)
	if !ok {
		t.Fatalf("expected *UsageError panic, got %T: %v", v, v)
	}
	if !errors.Is(ue, target) {
		t.Fatalf("expected %v, got %v", target, ue)
	}
	return ue
}

func TestSuccess(t *testing.T) {
	t.Parallel()
	p := &person{Name: "Test", Age: 20}
	res := Success(p)

	if !res.Succeeded() || res.SucceededPartially() {
		t.Fatalf("expected full success, got %v", res.State())
	}
	if res.GetOk() != p {
		t.Fatalf("expected payload %v, got %v", p, res.GetOk())
	}
	if res.Message() != "" || res.Err() != nil {
		t.Fatalf("expected no error, got %q", res.Message())
	}
}

func TestSuccess_ValuePayload(t *testing.T) {
	t.Parallel()
	res := Success(0)
	if !res.Succeeded() || res.GetOk() != 0 {
		t.Fatalf("expected success with 0, got %v", res)
	}
}

func TestOk(t *testing.T) {
	t.Parallel()
	o := Ok()
	if !o.Succeeded() || o.SucceededPartially() || o.State() != StateSuccess {
		t.Fatalf("expected success, got %v", o.State())
	}
	if o.Message() != "" {
		t.Fatalf("expected empty message, got %q", o.Message())
	}
}

func TestPartial(t *testing.T) {
	t.Parallel()
	mild := errors.New("Mild Error")

	o := PartialOk(mild)
	if !o.Succeeded() || !o.SucceededPartially() {
		t.Fatalf("expected partial success, got %v", o.State())
	}
	if o.GetError() != mild || o.Message() != "Mild Error" {
		t.Fatalf("expected mild error, got %v", o.Err())
	}

	res := PartialSuccess("Test", mild)
	if !res.Succeeded() || !res.SucceededPartially() {
		t.Fatalf("expected partial success, got %v", res.State())
	}
	if res.GetOk() != "Test" || res.GetError() != mild {
		t.Fatalf("unexpected partial result %v", res)
	}
	if v, err := res.Get(); v != "Test" || err != nil {
		t.Fatalf("expected Get to report the payload only, got %v, %v", v, err)
	}
}

func TestFail(t *testing.T) {
	t.Parallel()
	err := errors.New("Test")

	o := Failure(err)
	if o.Succeeded() || o.SucceededPartially() || o.State() != StateError {
		t.Fatalf("expected failure, got %v", o.State())
	}
	if o.GetError() != err {
		t.Fatalf("expected carried error, got %v", o.GetError())
	}

	res := Fail[string](err)
	if res.Succeeded() || res.HasResult() || !res.IsFailure() {
		t.Fatalf("expected failure without payload, got %v", res)
	}
	if res.GetError() != err || res.Message() != "Test" {
		t.Fatalf("expected carried error, got %v", res.Err())
	}
	if _, got := res.Get(); got != err {
		t.Fatalf("expected Get to report %v, got %v", err, got)
	}
}

func TestConversions(t *testing.T) {
	t.Parallel()
	err := errors.New("Test")

	fromPayload := FromPayload("Test")
	success := Success("Test")
	if fromPayload.State() != success.State() || fromPayload.GetOk() != success.GetOk() ||
		fromPayload.Err() != success.Err() {
		t.Fatalf("FromPayload differs from Success: %v vs %v", fromPayload, success)
	}

	fromError := FromError[string](err)
	fail := Fail[string](err)
	if fromError.State() != fail.State() || fromError.GetError() != fail.GetError() ||
		fromError.HasResult() != fail.HasResult() {
		t.Fatalf("FromError differs from Fail: %v vs %v", fromError, fail)
	}

	fromErr := FromErr(err)
	if fromErr.State() != StateError || fromErr.GetError() != err {
		t.Fatalf("FromErr differs from Failure: %v", fromErr)
	}
}

func TestFromAdapters(t *testing.T) {
	t.Parallel()
	err := errors.New("bad")

	if r := From(3, nil); !r.Succeeded() || r.GetOk() != 3 {
		t.Fatalf("expected success with 3, got %v", r)
	}
	if r := From(3, err); r.Succeeded() || r.GetError() != err || r.HasResult() {
		t.Fatalf("expected failure, got %v", r)
	}
	if o := OutcomeOf(nil); !o.Succeeded() {
		t.Fatalf("expected success, got %v", o)
	}
	if o := OutcomeOf(err); o.Succeeded() || o.GetError() != err {
		t.Fatalf("expected failure, got %v", o)
	}
}

func TestNilPayloadFailsAtConstruction(t *testing.T) {
	t.Parallel()
	mild := errors.New("mild")

	cases := map[string]func(){
		"Success":        func() { Success[*person](nil) },
		"PartialSuccess": func() { PartialSuccess[*person](nil, mild) },
		"FromPayload":    func() { FromPayload[map[string]int](nil) },
		"From":           func() { From[[]int](nil, nil) },
		"Interface":      func() { Success[error](nil) },
	}
	for name, construct := range cases {
		ue := expectUsage(t, panicValue(construct), ErrInvalidArgument)
		if ue.Op != name && name != "Interface" {
			t.Fatalf("expected op %s, got %s", name, ue.Op)
		}
	}
}

func TestNilErrorFailsAtConstruction(t *testing.T) {
	t.Parallel()
	expectUsage(t, panicValue(func() { Failure(nil) }), ErrInvalidArgument)
	expectUsage(t, panicValue(func() { PartialOk(nil) }), ErrInvalidArgument)
	expectUsage(t, panicValue(func() { Fail[int](nil) }), ErrInvalidArgument)
	expectUsage(t, panicValue(func() { PartialSuccess(1, nil) }), ErrInvalidArgument)
}

func TestGetOk_OnFailure(t *testing.T) {
	t.Parallel()
	res := Fail[string](errors.New("Test"))
	ue := expectUsage(t, panicValue(func() { res.GetOk() }), ErrInvalidState)
	if ue.Op != "GetOk" || ue.State != StateError {
		t.Fatalf("unexpected usage error %v", ue)
	}
}

func TestGetError_OnSuccess(t *testing.T) {
	t.Parallel()
	expectUsage(t, panicValue(func() { Ok().GetError() }), ErrInvalidState)
	expectUsage(t, panicValue(func() { Success(1).GetError() }), ErrInvalidState)
}

func TestZeroValueIsEmpty(t *testing.T) {
	t.Parallel()
	var o Outcome
	var r Result[int]

	if !o.IsEmpty() || o.Succeeded() || o.State().String() != "empty" {
		t.Fatalf("expected empty outcome, got %v", o.State())
	}
	if !r.IsEmpty() || r.Succeeded() || r.Message() != "" {
		t.Fatalf("expected empty result, got %v", r.State())
	}
	expectUsage(t, panicValue(func() { r.GetOk() }), ErrInvalidState)
	if _, err := r.Get(); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected invalid state from Get, got %v", err)
	}
}

func TestFailFrom(t *testing.T) {
	t.Parallel()
	err := errors.New("Test")
	in := Fail[int](err)
	out := FailFrom[int, string](in)

	if out.Succeeded() || out.GetError() != err || out.Id() != in.Id() {
		t.Fatalf("expected re-typed failure, got %v", out)
	}
	expectUsage(t, panicValue(func() { FailFrom[int, string](Success(1)) }), ErrInvalidState)
}

func TestOutcomeView(t *testing.T) {
	t.Parallel()
	mild := errors.New("mild")
	res := PartialSuccess(5, mild)
	o := res.Outcome()

	if !o.SucceededPartially() || o.GetError() != mild || o.Id() != res.Id() {
		t.Fatalf("expected partial outcome view, got %v", o)
	}
	if !o.CreatedAt().Equal(res.CreatedAt()) {
		t.Fatalf("expected same creation time")
	}
}

func TestString(t *testing.T) {
	t.Parallel()
	if s := Ok().String(); s != "success" {
		t.Fatalf("unexpected %q", s)
	}
	if s := Failure(errors.New("x")).String(); s != "error: x" {
		t.Fatalf("unexpected %q", s)
	}
	if s := PartialSuccess(2, errors.New("y")).String(); s != "partial success: y (2)" {
		t.Fatalf("unexpected %q", s)
	}
}

func TestIsNil(t *testing.T) {
	t.Parallel()
	var p *person
	var m map[string]int
	var f func()
	var e error

	for _, v := range []interface{}{nil, p, m, f, e} {
		if !IsNil(v) {
			t.Fatalf("expected %T to be nil", v)
		}
	}
	for _, v := range []interface{}{0, "", person{}, &person{}, []int{}} {
		if IsNil(v) {
			t.Fatalf("expected %T not to be nil", v)
		}
	}
}

func TestGetErrors(t *testing.T) {
	t.Parallel()
	a, b := errors.New("a"), errors.New("b")

	if got := GetErrors(nil); len(got) != 0 {
		t.Fatalf("expected no errors, got %v", got)
	}
	if got := GetErrors(a); len(got) != 1 || got[0] != a {
		t.Fatalf("expected [a], got %v", got)
	}
	if got := GetErrors(errors.Join(a, b)); len(got) != 2 {
		t.Fatalf("expected [a b], got %v", got)
	}
}
