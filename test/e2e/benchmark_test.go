package e2e_test

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcncl/jsontree/internal/parser"
	"github.com/mcncl/jsontree/internal/printer"
)

// generateNestedJSON creates a deeply nested JSON structure for benchmarking
func generateNestedJSON(depth int, width int) map[string]interface{} {
	if depth <= 0 {
		return map[string]interface{}{
			"leaf_value": "data",
			"count":      rand.Intn(100),
			"ratio":      rand.Float64(),
			"enabled":    rand.Intn(2) == 1,
		}
	}

	result := make(map[string]interface{})
	for i := 0; i < width; i++ {
		key := fmt.Sprintf("nested_%d_%d", depth, i)
		result[key] = generateNestedJSON(depth-1, width)
	}
	return result
}

// generateWideJSON creates a JSON object with many fields at the same level
func generateWideJSON(fieldCount int) map[string]interface{} {
	result := make(map[string]interface{})
	for i := 0; i < fieldCount; i++ {
		switch i % 4 {
		case 0:
			result[fmt.Sprintf("string_field_%d", i)] = fmt.Sprintf("value_%d", i)
		case 1:
			result[fmt.Sprintf("int_field_%d", i)] = i
		case 2:
			result[fmt.Sprintf("bool_field_%d", i)] = i%2 == 0
		case 3:
			result[fmt.Sprintf("float_field_%d", i)] = float64(i) + 0.5
		}
	}
	return result
}

func marshalInput(b *testing.B, v interface{}) string {
	b.Helper()
	data, err := json.Marshal(v)
	require.NoError(b, err)
	return string(data)
}

func BenchmarkParse_Nested(b *testing.B) {
	input := marshalInput(b, generateNestedJSON(4, 4))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := parser.Parse(strings.NewReader(input)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_Wide(b *testing.B) {
	input := marshalInput(b, generateWideJSON(1000))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := parser.Parse(strings.NewReader(input)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPrint_Nested(b *testing.B) {
	input := marshalInput(b, generateNestedJSON(4, 4))
	doc, err := parser.ParseString(input)
	require.NoError(b, err)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = printer.Sprint(doc)
	}
}

func BenchmarkRoundTrip_Wide(b *testing.B) {
	input := marshalInput(b, generateWideJSON(500))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		doc, err := parser.ParseString(input)
		if err != nil {
			b.Fatal(err)
		}
		_ = printer.Sprint(doc)
	}
}
