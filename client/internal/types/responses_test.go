package types

import "testing"

func TestUnwrap(t *testing.T) {
	t.Parallel()
	cases := []struct {
		body      string
		payload   string
		enveloped bool
	}{
		{`{"data":{"id":"L1"}}`, `{"id":"L1"}`, true},
		{`{"id":"L1"}`, `{"id":"L1"}`, false},
		{`{"data":[1,2],"page":1}`, `[1,2]`, true},
		{`[{"id":"x"}]`, `[{"id":"x"}]`, false},
		{` "ok" `, `"ok"`, false},
	}
	for _, c := range cases {
		payload, enveloped := Unwrap([]byte(c.body))
		if string(payload) != c.payload || enveloped != c.enveloped {
			t.Fatalf("Unwrap(%s) = %s,%v want %s,%v", c.body, payload, enveloped, c.payload, c.enveloped)
		}
	}
}

func TestResult_RecordAndValue(t *testing.T) {
	t.Parallel()
	r := NewResult([]byte(`{"id":"L1","amount":1000}`), true)
	rec, err := r.Record()
	if err != nil || rec["id"] != "L1" || rec["amount"] != float64(1000) {
		t.Fatalf("Record: %v err=%v", rec, err)
	}
	if _, err := r.Records(); err == nil {
		t.Fatal("Records on an object should fail")
	}
	v, err := r.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if _, ok := v.(map[string]any); !ok {
		t.Fatalf("Value type %T", v)
	}
}
