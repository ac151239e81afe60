/*
 * Copyright 2025 kestreldb.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package types

import "testing"

func TestJSONObjectScan(t *testing.T) {
	var obj JSONObject
	if err := obj.Scan([]byte(`{"role":"admin","level":3}`)); err != nil {
		t.Fatalf("Scan bytes: %v", err)
	}
	if obj["role"] != "admin" {
		t.Errorf("obj = %v", obj)
	}

	var fromString JSONObject
	if err := fromString.Scan(`{"a":1}`); err != nil {
		t.Fatalf("Scan string: %v", err)
	}

	var fromNull JSONObject
	if err := fromNull.Scan(nil); err != nil {
		t.Fatalf("Scan nil: %v", err)
	}
	if fromNull == nil || len(fromNull) != 0 {
		t.Errorf("NULL should scan to an empty object, got %v", fromNull)
	}

	var bad JSONObject
	if err := bad.Scan(42); err == nil {
		t.Error("scanning an int should error")
	}
}

func TestJSONObjectValue(t *testing.T) {
	v, err := JSONObject{"a": "b"}.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if string(v.([]byte)) != `{"a":"b"}` {
		t.Errorf("Value = %s", v)
	}

	var nilObj JSONObject
	v, err = nilObj.Value()
	if err != nil || v != nil {
		t.Errorf("nil object Value = (%v, %v), want (nil, nil)", v, err)
	}
}

func TestJSONArrayRoundTrip(t *testing.T) {
	var arr JSONArray
	if err := arr.Scan([]byte(`[{"a":1},{"b":2}]`)); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(arr) != 2 {
		t.Fatalf("len = %d, want 2", len(arr))
	}

	var fromNull JSONArray
	if err := fromNull.Scan(nil); err != nil {
		t.Fatalf("Scan nil: %v", err)
	}
	if fromNull == nil || len(fromNull) != 0 {
		t.Errorf("NULL should scan to an empty array, got %v", fromNull)
	}
}
