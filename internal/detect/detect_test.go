package detect

import "testing"

func TestSniff_Aggregated(t *testing.T) {
	input := `{"numFailedTests":0,"testResults":[{"testFilePath":"/x/state-styling.test.js","numFailingTests":0}]}`
	if got := Sniff([]byte(input)); got != Aggregated {
		t.Errorf("expected Aggregated, got %s", got)
	}
}

func TestSniff_AggregatedPrettyPrinted(t *testing.T) {
	input := "{\n  \"testResults\": []\n}\n"
	if got := Sniff([]byte(input)); got != Aggregated {
		t.Errorf("expected Aggregated, got %s", got)
	}
}

func TestSniff_ObjectWithoutResults(t *testing.T) {
	if got := Sniff([]byte(`{"version":"2.1.0","runs":[]}`)); got != Unknown {
		t.Errorf("expected Unknown, got %s", got)
	}
}

func TestSniff_GoTestJSON(t *testing.T) {
	input := `{"Time":"2024-01-01T00:00:00Z","Action":"start","Package":"example.com/pkg"}` + "\n"
	if got := Sniff([]byte(input)); got != GoTestJSON {
		t.Errorf("expected GoTestJSON, got %d", got)
	}
}

func TestSniff_GoTestJSON_OutputAction(t *testing.T) {
	input := `{"Time":"2024-01-01T00:00:00Z","Action":"output","Package":"example.com/pkg","Output":"=== RUN TestFoo\n"}` + "\n"
	if got := Sniff([]byte(input)); got != GoTestJSON {
		t.Errorf("expected GoTestJSON, got %d", got)
	}
}

func TestSniff_Empty(t *testing.T) {
	if got := Sniff([]byte("")); got != Unknown {
		t.Errorf("expected Unknown for empty, got %d", got)
	}
}

func TestSniff_PlainText(t *testing.T) {
	if got := Sniff([]byte("this is not json")); got != Unknown {
		t.Errorf("expected Unknown for plain text, got %d", got)
	}
}

func TestSniff_InvalidJSON(t *testing.T) {
	if got := Sniff([]byte("{invalid")); got != Unknown {
		t.Errorf("expected Unknown for invalid JSON, got %d", got)
	}
}

func TestSniff_LeadingWhitespace(t *testing.T) {
	input := `  {"Time":"2024-01-01T00:00:00Z","Action":"pass","Package":"x"}` + "\n"
	if got := Sniff([]byte(input)); got != GoTestJSON {
		t.Errorf("expected GoTestJSON with leading whitespace, got %d", got)
	}
}

func TestSniff_GoTestJSONStreamIsNotAggregated(t *testing.T) {
	input := `{"Action":"start","Package":"a"}` + "\n" + `{"Action":"pass","Package":"a"}` + "\n"
	if got := Sniff([]byte(input)); got != GoTestJSON {
		t.Errorf("expected GoTestJSON, got %s", got)
	}
}
