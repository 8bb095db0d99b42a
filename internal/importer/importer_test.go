package importer

import (
	"strings"
	"testing"
)

func TestDetectCSVDelimiterComma(t *testing.T) {
	data := []byte("code,length,width,height,weight,quantity\nA,10,10,10,1,1\nB,20,20,20,2,1\n")
	if d := DetectCSVDelimiter(data); d != ',' {
		t.Errorf("expected comma, got %q", d)
	}
}

func TestDetectCSVDelimiterSemicolon(t *testing.T) {
	data := []byte("code;length;width;height;weight;quantity\nA;10;10;10;1;1\nB;20;20;20;2;1\n")
	if d := DetectCSVDelimiter(data); d != ';' {
		t.Errorf("expected semicolon, got %q", d)
	}
}

func TestDetectColumnsWithHeader(t *testing.T) {
	mapping, ok := DetectColumns([]string{"SKU", "Length", "Width", "Height", "Weight", "Qty", "Rotatable"})
	if !ok {
		t.Fatal("expected header detected")
	}
	if mapping.Code != 0 || mapping.Length != 1 || mapping.Weight != 4 || mapping.Quantity != 5 {
		t.Errorf("unexpected mapping: %+v", mapping)
	}
}

func TestDetectColumnsPositionalFallback(t *testing.T) {
	mapping, ok := DetectColumns([]string{"A1", "10", "10", "10", "1", "1"})
	if ok {
		t.Fatal("expected no header detected")
	}
	if mapping.Code != 0 || mapping.Length != 1 {
		t.Errorf("unexpected positional mapping: %+v", mapping)
	}
}

func TestImportCSVFromReaderParsesProducts(t *testing.T) {
	csv := "code,length,width,height,weight,quantity,rotatable\nBOX-A,40,30,20,5,2,true\nBOX-B,50,50,50,10,1,false\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Products) != 3 {
		t.Fatalf("expected 3 expanded products (qty 2 + qty 1), got %d", len(result.Products))
	}
	if result.Products[0].Code != "BOX-A" || !result.Products[0].RotatableHorizontal {
		t.Errorf("unexpected first product: %+v", result.Products[0])
	}
	if result.Products[2].Code != "BOX-B" || result.Products[2].RotatableHorizontal {
		t.Errorf("unexpected third product: %+v", result.Products[2])
	}
}

func TestImportCSVFromReaderRejectsNonPositiveDimensions(t *testing.T) {
	csv := "code,length,width,height,weight,quantity\nBOX-A,0,30,20,5,1\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	if len(result.Products) != 0 {
		t.Errorf("expected no products, got %d", len(result.Products))
	}
	if len(result.Errors) == 0 {
		t.Error("expected an error for non-positive length")
	}
}

func TestImportCSVFromReaderMissingRequiredColumn(t *testing.T) {
	csv := "code,length,width,quantity\nBOX-A,10,10,1\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	if len(result.Errors) == 0 {
		t.Error("expected an error when height/weight columns are missing")
	}
}

func TestImportCSVFromReaderParsesStrengthColumn(t *testing.T) {
	csv := "code,length,width,height,weight,quantity,rotatable,strength\nBOX-A,40,30,20,5,1,true,120\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(result.Products))
	}
	if result.Products[0].Strength != 120 {
		t.Errorf("expected strength 120, got %.1f", result.Products[0].Strength)
	}
}

func TestImportCSVFromReaderMissingStrengthDefaultsToZero(t *testing.T) {
	csv := "code,length,width,height,weight,quantity\nBOX-A,40,30,20,5,1\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(result.Products))
	}
	if result.Products[0].Strength != 0 {
		t.Errorf("expected strength to default to 0, got %.1f", result.Products[0].Strength)
	}
}

func TestImportCSVFromReaderInvalidStrengthWarnsNotErrors(t *testing.T) {
	csv := "code,length,width,height,weight,quantity,strength\nBOX-A,40,30,20,5,1,not-a-number\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Products) != 1 {
		t.Fatalf("expected import to still succeed, got %d products", len(result.Products))
	}
	if result.Products[0].Strength != 0 {
		t.Errorf("expected strength to stay 0 when unparseable, got %.1f", result.Products[0].Strength)
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "invalid strength") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a warning about the invalid strength value, got %v", result.Warnings)
	}
}

func TestImportCSVFromReaderPositionalNoHeader(t *testing.T) {
	csv := "BOX-A,10,10,10,1,1\nBOX-B,20,20,20,2,1\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(result.Products))
	}
}
