package trace

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/ezrec/opsolve/cpu"
	"github.com/ezrec/opsolve/translate"
)

var sampleText = []string{
	"Before: [3, 2, 1, 1]",
	"9 2 1 2",
	"After:  [3, 2, 2, 1]",
	"",
	"Before: [0, 1, 2, 3]",
	"15 3 2 0",
	"After:  [0, 1, 2, 3]",
	"",
}

func TestParseSamples(t *testing.T) {
	assert := assert.New(t)

	samples, err := ParseSamples(strings.NewReader(strings.Join(sampleText, "\n")))
	assert.NoError(err)
	assert.Equal([]cpu.Sample{
		{
			Before:      cpu.Registers{3, 2, 1, 1},
			After:       cpu.Registers{3, 2, 2, 1},
			Instruction: cpu.Instruction{Id: 9, A: 2, B: 1, C: 2},
		},
		{
			Before:      cpu.Registers{0, 1, 2, 3},
			After:       cpu.Registers{0, 1, 2, 3},
			Instruction: cpu.Instruction{Id: 15, A: 3, B: 2, C: 0},
		},
	}, samples)

	samples, err = ParseSamples(strings.NewReader(""))
	assert.NoError(err)
	assert.Empty(samples)
}

func TestSamplesStop(t *testing.T) {
	assert := assert.New(t)

	count := 0
	for sample, err := range Samples(strings.NewReader(strings.Join(sampleText, "\n"))) {
		assert.NoError(err)
		assert.Equal(uint32(9), sample.Id)
		count++
		break
	}
	assert.Equal(1, count)
}

func TestParseProgram(t *testing.T) {
	assert := assert.New(t)

	program, err := ParseProgram(strings.NewReader("9 3 0 1\n\n  2 1 1 0  \n15 0 4294967295 3\n"))
	assert.NoError(err)
	assert.Equal([]cpu.Instruction{
		{Id: 9, A: 3, B: 0, C: 1},
		{Id: 2, A: 1, B: 1, C: 0},
		{Id: 15, A: 0, B: 0xffffffff, C: 3},
	}, program)

	program, err = ParseProgram(strings.NewReader(""))
	assert.NoError(err)
	assert.Empty(program)
}

func TestParseInput(t *testing.T) {
	assert := assert.New(t)

	text := append(append([]string{}, sampleText...), "", "", "9 3 0 1", "2 1 1 0")

	in, err := ParseInput(strings.NewReader(strings.Join(text, "\n")))
	assert.NoError(err)
	assert.Equal(2, len(in.Samples))
	assert.Equal([]cpu.Instruction{
		{Id: 9, A: 3, B: 0, C: 1},
		{Id: 2, A: 1, B: 1, C: 0},
	}, in.Program)
}

func TestParseErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		parse  func(text string) error
		text   []string
		lineno int
		err    error
	}){
		{"short_before", samplesOnly, []string{"Before: [3, 2, 1]", "9 2 1 2", "After: [3, 2, 2, 1]"}, 1, ErrRegisterList},
		{"bad_instruction", samplesOnly, []string{"Before: [3, 2, 1, 1]", "9 2 1", "After: [3, 2, 2, 1]"}, 2, ErrInstruction},
		{"bad_after", samplesOnly, []string{"Before: [3, 2, 1, 1]", "9 2 1 2", "Later: [3, 2, 2, 1]"}, 3, ErrRegisterList},
		{"gap", samplesOnly, []string{"Before: [3, 2, 1, 1]", "", "9 2 1 2"}, 2, ErrSampleIncomplete},
		{"truncated", samplesOnly, []string{"Before: [3, 2, 1, 1]", "9 2 1 2"}, 2, ErrSampleIncomplete},
		{"no_program", samplesOnly, []string{"9 2 1 2"}, 1, ErrRegisterList},
		{"overflow", samplesOnly, []string{"Before: [4294967296, 2, 1, 1]"}, 1, ErrNumber},
		{"program_words", programOnly, []string{"9 2 1 2", "addr 1 2 3"}, 2, ErrInstruction},
		{"program_sample", programOnly, []string{"Before: [3, 2, 1, 1]"}, 1, ErrInstruction},
		{"sample_after_program", inputOnly, []string{"9 2 1 2", "Before: [3, 2, 1, 1]"}, 2, ErrInstruction},
	}

	for _, entry := range table {
		err := entry.parse(strings.Join(entry.text, "\n"))
		assert.ErrorIs(err, entry.err, entry.name)

		var syntax *ErrSyntax
		if assert.True(errors.As(err, &syntax), entry.name) {
			assert.Equal(entry.lineno, syntax.LineNo, entry.name)
		}
	}
}

func samplesOnly(text string) (err error) {
	_, err = ParseSamples(strings.NewReader(text))
	return
}

func programOnly(text string) (err error) {
	_, err = ParseProgram(strings.NewReader(text))
	return
}

func inputOnly(text string) (err error) {
	_, err = ParseInput(strings.NewReader(text))
	return
}

func TestErrSyntaxLineNo(t *testing.T) {
	assert := assert.New(t)

	translate.SetLanguage(language.AmericanEnglish)

	err := &ErrSyntax{LineNo: 1234, Line: "bad", Err: ErrInstruction}
	assert.Equal("line 1234 'bad' expected 'id a b c' instruction", err.Error())

	lines := strings.Repeat("9 2 1 2\n", 1233) + "bad\n"
	_, perr := ParseProgram(strings.NewReader(lines))
	assert.ErrorIs(perr, ErrInstruction)
	assert.Contains(perr.Error(), "line 1234 ")
}
