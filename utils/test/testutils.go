package testutils

import (
	"encoding/json"
	"fmt"
	"reflect"
	"testing"
)

func AreEqualJSON(s1, s2 string) (bool, error) {
	var o1 interface{}
	var o2 interface{}

	var err error
	err = json.Unmarshal([]byte(s1), &o1)
	if err != nil {
		return false, fmt.Errorf("Error mashalling string 1 :: %s", err.Error())
	}
	err = json.Unmarshal([]byte(s2), &o2)
	if err != nil {
		return false, fmt.Errorf("Error mashalling string 2 :: %s", err.Error())
	}

	return reflect.DeepEqual(o1, o2), nil
}

// AssertJSONBody fails the test when body is not the JSON encoding of want
func AssertJSONBody(t *testing.T, want interface{}, body []byte) bool {
	t.Helper()

	wantJSON, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("Marshalling expected value failed: %v", err)
	}

	eq, err := AreEqualJSON(string(wantJSON), string(body))
	if err != nil {
		t.Errorf("%v", err)
		return false
	}
	if !eq {
		t.Errorf("Expected %s but got %s", wantJSON, body)
	}
	return eq
}
