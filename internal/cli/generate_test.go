package cli

import (
	"strings"
	"testing"

	"github.com/tessella/tessella/pkg/errors"
	"github.com/tessella/tessella/pkg/pattern"
)

func TestValidateGenerateOpts(t *testing.T) {
	valid := generateOpts{
		width: 80, height: 40,
		mode: modeSymmetric, format: formatText, background: "white",
	}

	tests := []struct {
		name     string
		mutate   func(*generateOpts)
		wantCode errors.Code
	}{
		{
			name:   "valid defaults",
			mutate: func(o *generateOpts) {},
		},
		{
			name:     "zero width",
			mutate:   func(o *generateOpts) { o.width = 0 },
			wantCode: errors.ErrCodeInvalidSize,
		},
		{
			name:     "negative height",
			mutate:   func(o *generateOpts) { o.height = -3 },
			wantCode: errors.ErrCodeInvalidSize,
		},
		{
			name:     "bad format",
			mutate:   func(o *generateOpts) { o.format = "pdf" },
			wantCode: errors.ErrCodeInvalidFormat,
		},
		{
			name:     "bad mode",
			mutate:   func(o *generateOpts) { o.mode = "spiral" },
			wantCode: errors.ErrCodeInvalidMode,
		},
		{
			name:     "bad background",
			mutate:   func(o *generateOpts) { o.background = "plaid" },
			wantCode: errors.ErrCodeInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := valid
			tt.mutate(&opts)

			err := validateGenerateOpts(&opts)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("validateGenerateOpts() error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("validateGenerateOpts() should fail")
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestBuildPattern(t *testing.T) {
	opts := generateOpts{
		width: 20, height: 10,
		seed: 42, seedSet: true,
		group: "p4m",
		mode:  modeSymmetric,
	}

	p, err := buildPattern(&opts)
	if err != nil {
		t.Fatalf("buildPattern() error = %v", err)
	}
	if p.Width() != 20 || p.Height() != 10 {
		t.Errorf("size = %dx%d, want 20x10", p.Width(), p.Height())
	}
	if p.Seed() != 42 {
		t.Errorf("Seed() = %d, want 42", p.Seed())
	}
	if p.Group() != pattern.GroupP4M {
		t.Errorf("Group() = %s, want p4m", p.Group())
	}
}

func TestBuildPatternUnknownGroup(t *testing.T) {
	opts := generateOpts{width: 20, height: 10, group: "p99", mode: modeSymmetric}

	_, err := buildPattern(&opts)
	if err == nil {
		t.Fatal("buildPattern() should reject unknown group")
	}
	if !errors.Is(err, errors.ErrCodeInvalidGroup) {
		t.Errorf("error code = %v, want INVALID_GROUP", errors.GetCode(err))
	}
}

func TestRenderOutputText(t *testing.T) {
	opts := generateOpts{
		width: 20, height: 10,
		seed: 42, seedSet: true,
		mode: modeSymmetric, format: formatText, background: "white",
	}
	p, err := buildPattern(&opts)
	if err != nil {
		t.Fatal(err)
	}
	p.Draw()

	out, err := renderOutput(p, &opts)
	if err != nil {
		t.Fatalf("renderOutput() error = %v", err)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("text output should end with a newline")
	}
	if got := strings.Count(out, "\n"); got != 10 {
		t.Errorf("line count = %d, want 10", got)
	}
}

func TestRenderOutputHTML(t *testing.T) {
	opts := generateOpts{
		width: 20, height: 10,
		seed: 42, seedSet: true,
		mode: modeSymmetric, format: formatHTML, background: "black",
	}
	p, err := buildPattern(&opts)
	if err != nil {
		t.Fatal(err)
	}
	p.Draw()

	out, err := renderOutput(p, &opts)
	if err != nil {
		t.Fatalf("renderOutput() error = %v", err)
	}
	if !strings.Contains(out, "<!DOCTYPE html>") {
		t.Error("HTML output should be a full document")
	}
	if !strings.Contains(out, "<title>tessella ") {
		t.Error("HTML title should name the group")
	}
}
