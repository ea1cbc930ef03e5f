package domain_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"strata.dev/pkg/strata/internal/adapter"
	adaptermocks "strata.dev/pkg/strata/internal/adapter/mocks"
	"strata.dev/pkg/strata/internal/domain"
	"strata.dev/pkg/strata/internal/domain/perturbations"
	m "strata.dev/pkg/strata/internal/model"
)

const calculatorJava = `package demo;

public class Calculator {
    /** Adds two numbers. */
    public int add(int a, int b) {
        // sum them
        return a + b;
    }

    public int add(int a, int b, int c) {
        return a + b + c;
    }
}
`

func testStrata(t *testing.T) m.Strata {
	t.Helper()

	strata, err := domain.ParseStrata([]domain.StratumConfig{
		{ID: 0, Axes: []domain.AxisConfig{{Axis: "none"}, {Axis: "comments", Intensity: "remove"}}},
		{ID: 1, Base: []domain.AxisConfig{{Axis: "indentation", Intensity: "strip"}}, Axes: []domain.AxisConfig{{Axis: "spaces", Intensity: "many"}}},
	})
	require.NoError(t, err)

	return strata
}

func newTestOrchestrator(t *testing.T, fsAdapter adapter.SourceFSAdapter, opts domain.ExtractOptions) domain.Orchestrator {
	t.Helper()

	dialects, err := adapter.NewLocalDialectAdapter("", nil)
	require.NoError(t, err)

	engine, err := domain.NewEngine(m.SymbolTable{}, 0)
	require.NoError(t, err)

	if fsAdapter == nil {
		fsAdapter = adapter.NewLocalSourceFSAdapter(dialects)
	}

	return domain.NewOrchestrator(fsAdapter, dialects, testStrata(t), engine, opts)
}

func javaFile(t *testing.T, id, text string) m.SourceFile {
	t.Helper()

	d, err := m.DialectByName("java")
	require.NoError(t, err)

	return m.SourceFile{ID: id, Path: m.Path(id), Dialect: d, Text: text}
}

func recordIDs(records []m.Record) []string {
	ids := make([]string, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.ID)
	}

	return ids
}

func TestOrchestrator_Process_EmitsOriginalAndVariantsPerUnit(t *testing.T) {
	o := newTestOrchestrator(t, nil, domain.DefaultExtractOptions())

	result := o.Process(javaFile(t, "demo/Calculator.java", calculatorJava))

	require.Empty(t, result.Failures)
	require.Len(t, result.Units, 2)

	want := []string{
		"demo/Calculator.java#Calculator.add/original",
		"demo/Calculator.java#Calculator.add/stratum0_none_none",
		"demo/Calculator.java#Calculator.add/stratum0_comments_remove",
		"demo/Calculator.java#Calculator.add/stratum1_spaces_many",
		"demo/Calculator.java#Calculator.add~2/original",
		"demo/Calculator.java#Calculator.add~2/stratum0_none_none",
		"demo/Calculator.java#Calculator.add~2/stratum0_comments_remove",
		"demo/Calculator.java#Calculator.add~2/stratum1_spaces_many",
	}
	if diff := cmp.Diff(want, recordIDs(result.Records)); diff != "" {
		t.Errorf("record IDs mismatch (-want +got):\n%s", diff)
	}

	original := result.Records[0]
	assert.True(t, original.Original)
	assert.True(t, strings.HasPrefix(original.Text, "/** Adds two numbers. */"))
	assert.True(t, strings.HasSuffix(original.Text, "}"))
	assert.Equal(t, original.Text, result.Records[1].Text, "stratum 0 has no base")

	stripped := result.Records[2]
	assert.NotContains(t, stripped.Text, "sum them")
	assert.NotContains(t, stripped.Text, "Adds two numbers")
	assert.False(t, stripped.Unchanged)

	for _, record := range result.Records {
		assert.Equal(t, "demo/Calculator.java", record.SourceID)
		assert.Equal(t, "Calculator", record.EnclosingType)
		assert.Equal(t, "add", record.UnitName)
	}
}

func TestOrchestrator_Process_CommentFreeUnitIsUnchanged(t *testing.T) {
	o := newTestOrchestrator(t, nil, domain.DefaultExtractOptions())

	result := o.Process(javaFile(t, "Calculator.java", calculatorJava))

	var second m.Record
	for _, record := range result.Records {
		if record.ID == "Calculator.java#Calculator.add~2/stratum0_comments_remove" {
			second = record
		}
	}

	require.NotEmpty(t, second.ID)
	assert.True(t, second.Unchanged)
}

func TestOrchestrator_Process_RequireDocSkipsUndocumented(t *testing.T) {
	o := newTestOrchestrator(t, nil, domain.ExtractOptions{IncludeDoc: false, RequireDoc: true})

	result := o.Process(javaFile(t, "Calculator.java", calculatorJava))

	require.Len(t, result.Units, 2, "location is unaffected by extraction filters")
	require.NotEmpty(t, result.Records)

	for _, record := range result.Records {
		assert.Equal(t, 1, record.Ordinal)
	}

	assert.True(t, strings.HasPrefix(result.Records[0].Text, "public int add"), "doc excluded from the snippet")
}

func TestOrchestrator_Process_NoUnits(t *testing.T) {
	o := newTestOrchestrator(t, nil, domain.DefaultExtractOptions())

	result := o.Process(javaFile(t, "Constants.java", "public interface Constants {\n    int MAX = 3;\n}\n"))

	assert.Empty(t, result.Records)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, m.FailureNoUnits, result.Failures[0].Kind)
	assert.False(t, result.Failures[0].Kind.Fatal())
}

func TestOrchestrator_Process_DegenerateScanStillEmits(t *testing.T) {
	o := newTestOrchestrator(t, nil, domain.DefaultExtractOptions())

	result := o.Process(javaFile(t, "Broken.java", "class Broken {\n    void f() { g(); }\n}\n/* never closed"))

	require.NotEmpty(t, result.Failures)
	assert.Equal(t, m.FailureScanDegenerate, result.Failures[0].Kind)
	assert.NotEmpty(t, result.Records)
}

func TestOrchestrator_ProcessSource_ReadsFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Calculator.java")
	require.NoError(t, os.WriteFile(path, []byte(calculatorJava), 0o600))

	o := newTestOrchestrator(t, nil, domain.DefaultExtractOptions())

	source := m.Source{Origin: &m.File{FullPath: m.Path(path), ShortPath: "src/Calculator.java"}}
	result := o.ProcessSource(context.Background(), source)

	require.Empty(t, result.Failures)
	assert.Equal(t, "src/Calculator.java", result.SourceID)
	assert.Equal(t, source, result.Source)
	assert.Len(t, source.Origin.Hash, 64)
	assert.Len(t, result.Records, 8)
}

func TestOrchestrator_ProcessSource_UnreadableSources(t *testing.T) {
	tests := []struct {
		name   string
		source m.Source
		setup  func(fs *adaptermocks.MockSourceFSAdapter)
	}{
		{
			name:   "nil origin",
			source: m.Source{},
		},
		{
			name:   "read error",
			source: m.Source{Origin: &m.File{FullPath: "/x/A.java", ShortPath: "A.java"}},
			setup: func(fs *adaptermocks.MockSourceFSAdapter) {
				fs.EXPECT().ReadFile(mock.Anything, m.Path("/x/A.java")).Return(nil, errors.New("permission denied"))
			},
		},
		{
			name:   "invalid utf-8",
			source: m.Source{Origin: &m.File{FullPath: "/x/B.java", ShortPath: "B.java"}},
			setup: func(fs *adaptermocks.MockSourceFSAdapter) {
				fs.EXPECT().ReadFile(mock.Anything, m.Path("/x/B.java")).Return([]byte{0xff, 0xfe, 'x'}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := adaptermocks.NewMockSourceFSAdapter(t)
			if tt.setup != nil {
				tt.setup(fs)
			}

			o := newTestOrchestrator(t, fs, domain.DefaultExtractOptions())

			result := o.ProcessSource(context.Background(), tt.source)

			assert.Empty(t, result.Records)
			require.Len(t, result.Failures, 1)
			assert.Equal(t, m.FailureUnreadable, result.Failures[0].Kind)
			assert.True(t, result.Failures[0].Kind.Fatal())
		})
	}
}

func TestOrchestrator_ProcessSource_UnknownDialect(t *testing.T) {
	fs := adaptermocks.NewMockSourceFSAdapter(t)
	fs.EXPECT().ReadFile(mock.Anything, m.Path("/x/notes.txt")).Return([]byte("hello"), nil)

	o := newTestOrchestrator(t, fs, domain.DefaultExtractOptions())

	result := o.ProcessSource(context.Background(), m.Source{Origin: &m.File{FullPath: "/x/notes.txt", ShortPath: "notes.txt"}})

	require.Len(t, result.Failures, 1)
	assert.Contains(t, result.Failures[0].Message, m.ErrUnknownDialect.Error())
}

func TestOrchestrator_ProcessSource_ExplicitDialect(t *testing.T) {
	fs := adaptermocks.NewMockSourceFSAdapter(t)
	fs.EXPECT().ReadFile(mock.Anything, m.Path("/x/calc.txt")).Return([]byte(calculatorJava), nil)

	o := newTestOrchestrator(t, fs, domain.DefaultExtractOptions())

	result := o.ProcessSource(context.Background(), m.Source{
		Origin:  &m.File{FullPath: "/x/calc.txt", ShortPath: "calc.txt"},
		Dialect: "java",
	})

	require.Empty(t, result.Failures)
	assert.Len(t, result.Units, 2)
}

func TestOrchestrator_SampleSources(t *testing.T) {
	dialects, err := adapter.NewLocalDialectAdapter("", nil)
	require.NoError(t, err)

	fs := adapter.NewLocalSourceFSAdapter(dialects)
	o := newTestOrchestrator(t, fs, domain.DefaultExtractOptions())

	root := filepath.Join("..", "..", "examples")

	sources, err := fs.Get(context.Background(), []m.Path{m.Path(root + "/...")}, adapter.SourceFilter{})
	require.NoError(t, err)
	require.Len(t, sources, 5)

	prefix := filepath.ToSlash(root) + "/"

	var units []string

	for _, source := range sources {
		result := o.ProcessSource(context.Background(), source)

		require.NotEmpty(t, result.Units, result.SourceID)
		assert.Zero(t, countKind(result.Failures, m.FailureUnreadable), result.SourceID)

		for i := range result.Units {
			units = append(units, strings.TrimPrefix(domain.UnitID(&result.Units[i]), prefix))
		}
	}

	for _, want := range []string{
		"c/stats.c#mean",
		"c/stats.c#main",
		"golang/server.go#Server.Start",
		"java/demo/Inventory.java#Inventory.restock",
		"java/demo/Inventory.java#Inventory.restock~2",
		"kotlin/Queue.kt#Queue.pop",
		"web/cart.js#Cart.total",
	} {
		assert.Contains(t, units, want)
	}
}

const greeterKotlin = `class Greeter {
    fun greet(name: String): String {
        return "Hi $name"
    }

    fun shout(text: String): String {
        return text.uppercase()
    }
}
`

func TestOrchestrator_Process_IsolatesRejectedVariants(t *testing.T) {
	dialects, err := adapter.NewLocalDialectAdapter("", nil)
	require.NoError(t, err)

	strata, err := domain.ParseStrata([]domain.StratumConfig{
		{ID: 0, Axes: []domain.AxisConfig{{Axis: "none"}, {Axis: "rename", Intensity: "few"}, {Axis: "spaces", Intensity: "few"}}},
	})
	require.NoError(t, err)

	engine, err := domain.NewEngine(m.SymbolTable{}, 0)
	require.NoError(t, err)

	o := domain.NewOrchestrator(adapter.NewLocalSourceFSAdapter(dialects), dialects, strata, engine, domain.DefaultExtractOptions())

	kotlin, err := m.DialectByName("kotlin")
	require.NoError(t, err)

	result := o.Process(m.SourceFile{ID: "Greeter.kt", Path: "Greeter.kt", Dialect: kotlin, Text: greeterKotlin})

	require.Len(t, result.Units, 2)
	require.Len(t, result.Failures, 1)

	failure := result.Failures[0]
	assert.Equal(t, m.FailureTransform, failure.Kind)
	assert.Equal(t, "Greeter.kt", failure.Source)
	assert.Equal(t, "Greeter.kt#Greeter.greet", failure.Unit)
	assert.Equal(t, "stratum0_rename_few", failure.Variant)
	assert.Contains(t, failure.Message, "name")

	ids := recordIDs(result.Records)
	assert.ElementsMatch(t, []string{
		"Greeter.kt#Greeter.greet/original",
		"Greeter.kt#Greeter.greet/stratum0_none_none",
		"Greeter.kt#Greeter.greet/stratum0_spaces_few",
		"Greeter.kt#Greeter.shout/original",
		"Greeter.kt#Greeter.shout/stratum0_none_none",
		"Greeter.kt#Greeter.shout/stratum0_rename_few",
		"Greeter.kt#Greeter.shout/stratum0_spaces_few",
	}, ids)

	for _, record := range result.Records {
		if record.ID == "Greeter.kt#Greeter.shout/stratum0_rename_few" {
			assert.Contains(t, record.Text, "arg0.uppercase()")
		}
	}
}

func TestOrchestrator_Process_IsolatesBrokenTransform(t *testing.T) {
	dialects, err := adapter.NewLocalDialectAdapter("", nil)
	require.NoError(t, err)

	base, err := domain.NewEngine(m.SymbolTable{}, 0)
	require.NoError(t, err)

	manySpaces, err := m.ParseAxisSpec("spaces", "many")
	require.NoError(t, err)

	engine := domain.WithTransform(base, manySpaces, func(in perturbations.Input) string {
		return in.Text + "{"
	})

	o := domain.NewOrchestrator(adapter.NewLocalSourceFSAdapter(dialects), dialects, testStrata(t), engine, domain.DefaultExtractOptions())

	result := o.Process(javaFile(t, "Calculator.java", calculatorJava))

	require.Len(t, result.Failures, 2)

	for _, failure := range result.Failures {
		assert.Equal(t, m.FailureTransform, failure.Kind)
		assert.Equal(t, "stratum1_spaces_many", failure.Variant)
	}

	assert.Equal(t, "Calculator.java#Calculator.add", result.Failures[0].Unit)
	assert.Equal(t, "Calculator.java#Calculator.add~2", result.Failures[1].Unit)

	want := []string{
		"Calculator.java#Calculator.add/original",
		"Calculator.java#Calculator.add/stratum0_none_none",
		"Calculator.java#Calculator.add/stratum0_comments_remove",
		"Calculator.java#Calculator.add~2/original",
		"Calculator.java#Calculator.add~2/stratum0_none_none",
		"Calculator.java#Calculator.add~2/stratum0_comments_remove",
	}
	if diff := cmp.Diff(want, recordIDs(result.Records)); diff != "" {
		t.Errorf("record IDs mismatch (-want +got):\n%s", diff)
	}
}

func countKind(failures []m.Failure, kind m.FailureKind) int {
	count := 0

	for _, failure := range failures {
		if failure.Kind == kind {
			count++
		}
	}

	return count
}
