package cli

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chenyiwei198603-source/xmpkfjjjzhiuizhusuan/internal/challenge"
	"github.com/chenyiwei198603-source/xmpkfjjjzhiuizhusuan/internal/formula"
	"github.com/chenyiwei198603-source/xmpkfjjjzhiuizhusuan/internal/position"
)

func TestColumnCommand(t *testing.T) {
	resp, err := executeJSON(t, testConfig(t), "column", "1", "3")
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, ColumnResult{Upper: 1, Lower: 3, Value: 8}, decode[ColumnResult](t, resp.Data))
}

func TestColumnCommand_OutOfRange(t *testing.T) {
	resp, err := executeJSON(t, testConfig(t), "column", "3", "0")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, ErrCodeInvalidInput, resp.Error.Code)
}

func TestBoardCommand(t *testing.T) {
	cfg := testConfig(t)

	for _, args := range [][]string{{"1", "2", "0", "3"}, {"1203"}, {"１２０３"}} {
		resp, err := executeJSON(t, cfg, append([]string{"board"}, args...)...)
		require.NoError(t, err, "args %v", args)
		got := decode[BoardResult](t, resp.Data)
		assert.Equal(t, []int{1, 2, 0, 3}, got.Digits)
		assert.Equal(t, int64(1203), got.Value)
		assert.Equal(t, "1,203", got.Formatted)
	}
}

func TestBoardCommand_Text(t *testing.T) {
	out, err := execute(t, testConfig(t), "board", "1234567")
	require.NoError(t, err)
	assert.Equal(t, "[1 2 3 4 5 6 7] = 1,234,567\n", out)
}

func TestBoardCommand_TooManyRods(t *testing.T) {
	cfg := testConfig(t)
	cfg.Rods = 3

	resp, err := executeJSON(t, cfg, "board", "1203")
	require.Error(t, err)
	assert.Equal(t, ErrCodeInvalidInput, resp.Error.Code)
}

func TestBoardCommand_RejectsBadDigit(t *testing.T) {
	resp, err := executeJSON(t, testConfig(t), "board", "1", "12")
	require.Error(t, err)
	assert.Equal(t, ErrCodeInvalidInput, resp.Error.Code)
}

func TestClassifyCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		koujue   string
		rule     formula.Rule
		action   string
		wantNone bool
	}{
		{"full five", []string{"3", "6"}, "三下五去二", formula.FullFiveAdd, "+3", false},
		{"direct subtract", []string{"6", "0"}, "六去六", formula.DirectSubtract, "-6", false},
		{"full width", []string{"３", "６"}, "三下五去二", formula.FullFiveAdd, "+3", false},
		{"fallback", []string{"10", "5"}, formula.MixedKoujue, formula.Mixed, "-5", false},
		{"no change", []string{"4", "4"}, "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := executeJSON(t, testConfig(t), append([]string{"classify"}, tt.args...)...)
			require.NoError(t, err)
			got := decode[ClassifyResult](t, resp.Data)
			if tt.wantNone {
				assert.Nil(t, got.Formula)
				return
			}
			require.NotNil(t, got.Formula)
			assert.Equal(t, tt.koujue, got.Formula.Koujue)
			assert.Equal(t, tt.rule, got.Formula.Rule)
			assert.Equal(t, tt.action, got.Formula.Action)
			assert.Nil(t, got.Correct)
		})
	}
}

func TestClassifyCommand_Answer(t *testing.T) {
	cfg := testConfig(t)

	resp, err := executeJSON(t, cfg, "classify", "3", "6", "--answer", "三下五 去二")
	require.NoError(t, err)
	got := decode[ClassifyResult](t, resp.Data)
	require.NotNil(t, got.Correct)
	assert.True(t, *got.Correct)

	resp, err = executeJSON(t, cfg, "classify", "7", "3", "--answer", "四去四")
	require.NoError(t, err)
	got = decode[ClassifyResult](t, resp.Data)
	require.NotNil(t, got.Correct)
	assert.False(t, *got.Correct)
	assert.Equal(t, "四上一去五", got.Formula.Koujue)
}

func TestClassifyCommand_Text(t *testing.T) {
	out, err := execute(t, testConfig(t), "classify", "3", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "3 -> 6: 三下五去二 (+3)")
	assert.Contains(t, out, "[full_five_add]")
}

func TestClassifyCommand_NotANumber(t *testing.T) {
	resp, err := executeJSON(t, testConfig(t), "classify", "three", "6")
	require.Error(t, err)
	assert.Equal(t, ErrCodeInvalidInput, resp.Error.Code)
}

func TestPositionCommand(t *testing.T) {
	cfg := testConfig(t)

	resp, err := executeJSON(t, cfg, "position", "mul", "25", "34")
	require.NoError(t, err)
	got := decode[PositionResult](t, resp.Data)
	assert.Equal(t, position.Multiply, got.Rule.Operation)
	assert.Equal(t, 3, got.Rule.TargetDigits)
	assert.Equal(t, "被乘数位m=2, 乘数位n=2。首积不进位(2×3=6<10), 积位=m+n-1=3。", got.Rule.Description)

	resp, err = executeJSON(t, cfg, "position", "DIV", "100", "4")
	require.NoError(t, err)
	got = decode[PositionResult](t, resp.Data)
	assert.Equal(t, 2, got.Rule.TargetDigits)
	assert.Equal(t, "被除数m=3, 除数n=1。首位1<4, 商位=m-n=2。", got.Rule.Description)
}

func TestPositionCommand_RejectsInput(t *testing.T) {
	cfg := testConfig(t)

	resp, err := executeJSON(t, cfg, "position", "pow", "2", "3")
	require.Error(t, err)
	assert.Equal(t, ErrCodeInvalidInput, resp.Error.Code)

	resp, err = executeJSON(t, cfg, "position", "mul", "0", "3")
	require.Error(t, err)
	assert.Equal(t, ErrCodeInvalidInput, resp.Error.Code)
}

func TestChallengeCommand_SeedIsReproducible(t *testing.T) {
	cfg := testConfig(t)

	first, err := executeJSON(t, cfg, "challenge", "--kind", "mul", "--seed", "42")
	require.NoError(t, err)
	second, err := executeJSON(t, cfg, "challenge", "--kind", "mul", "--seed", "42")
	require.NoError(t, err)

	a := decode[ChallengeResult](t, first.Data).Challenge
	b := decode[ChallengeResult](t, second.Data).Challenge
	assert.Equal(t, challenge.Multiply, a.Kind)
	assert.Equal(t, a.Question, b.Question)
	assert.Equal(t, a.A*a.B, a.Target)
	require.NotNil(t, a.Positioning)
	assert.Equal(t, len(strconv.Itoa(a.Target)), a.Positioning.TargetDigits)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Zero(t, decode[ChallengeResult](t, first.Data).Seq)
}

func TestChallengeCommand_UnknownKind(t *testing.T) {
	resp, err := executeJSON(t, testConfig(t), "challenge", "--kind", "pow")
	require.Error(t, err)
	assert.Equal(t, ErrCodeInvalidInput, resp.Error.Code)
}

func TestChallengeLifecycle(t *testing.T) {
	cfg := testConfig(t)

	resp, err := executeJSON(t, cfg, "challenge", "--kind", "ADD", "--seed", "7", "--record")
	require.NoError(t, err)
	recorded := decode[ChallengeResult](t, resp.Data)
	c := recorded.Challenge
	assert.Positive(t, recorded.Seq)
	require.Equal(t, []int{c.A, c.B}, c.Steps)

	// Wrong value leaves progress alone.
	resp, err = executeJSON(t, cfg, "answer", c.ID, strconv.Itoa(c.A+1))
	require.NoError(t, err)
	ans := decode[AnswerResult](t, resp.Data)
	assert.False(t, ans.Progress.Advanced)
	assert.Equal(t, int64(c.A), ans.Progress.Expected)

	resp, err = executeJSON(t, cfg, "answer", c.ID, strconv.Itoa(c.A))
	require.NoError(t, err)
	ans = decode[AnswerResult](t, resp.Data)
	assert.True(t, ans.Progress.Advanced)
	assert.False(t, ans.Progress.Done)
	assert.Equal(t, int64(c.A+c.B), ans.Progress.Expected)
	assert.Equal(t, 1, ans.CurrentStep)

	// Moves attached to the challenge show up in stats.
	_, err = executeJSON(t, cfg, "practice", "--challenge", c.ID, "--rod", "12", "3", "6")
	require.NoError(t, err)

	resp, err = executeJSON(t, cfg, "answer", c.ID, strconv.Itoa(c.Target))
	require.NoError(t, err)
	ans = decode[AnswerResult](t, resp.Data)
	assert.True(t, ans.Progress.Advanced)
	assert.True(t, ans.Progress.Done)

	resp, err = executeJSON(t, cfg, "stats", "--challenge", c.ID)
	require.NoError(t, err)
	stats := decode[StatsResult](t, resp.Data)
	assert.Equal(t, 1, stats.Challenges)
	assert.Equal(t, 1, stats.Completed)
	require.Len(t, stats.Moves, 1)
	assert.Equal(t, formula.FullFiveAdd, stats.Moves[0].Rule)
	assert.Equal(t, 12, stats.Moves[0].Rod)
}

func TestAnswerCommand_UnknownChallenge(t *testing.T) {
	cfg := testConfig(t)
	_, err := executeJSON(t, cfg, "challenge", "--record", "--seed", "1")
	require.NoError(t, err)

	resp, err := executeJSON(t, cfg, "answer", "missing", "5")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
}

func TestPracticeCommand(t *testing.T) {
	cfg := testConfig(t)

	resp, err := executeJSON(t, cfg, "practice", "3", "6")
	require.NoError(t, err)
	first := decode[PracticeResult](t, resp.Data)
	assert.Equal(t, formula.FullFiveAdd, first.Formula.Rule)
	assert.Empty(t, first.ChallengeID)

	for _, args := range [][]string{{"6", "0"}, {"9", "3"}} {
		_, err := executeJSON(t, cfg, append([]string{"practice"}, args...)...)
		require.NoError(t, err)
	}

	resp, err = executeJSON(t, cfg, "stats")
	require.NoError(t, err)
	stats := decode[StatsResult](t, resp.Data)
	require.Len(t, stats.Rules, 2)
	assert.Equal(t, formula.DirectSubtract, stats.Rules[0].Rule)
	assert.Equal(t, 2, stats.Rules[0].Count)
	assert.Equal(t, formula.FullFiveAdd, stats.Rules[1].Rule)
	assert.Empty(t, stats.Moves)
}

func TestPracticeCommand_Rejects(t *testing.T) {
	cfg := testConfig(t)

	tests := []struct {
		name string
		args []string
		code string
	}{
		{"no change", []string{"practice", "4", "4"}, ErrCodeInvalidInput},
		{"rod out of range", []string{"practice", "--rod", "13", "3", "6"}, ErrCodeInvalidInput},
		{"unknown challenge", []string{"practice", "--challenge", "missing", "3", "6"}, ErrCodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := executeJSON(t, cfg, tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}

func TestStatsCommand_MissingDatabase(t *testing.T) {
	resp, err := executeJSON(t, testConfig(t), "stats")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
}

func TestStatsCommand_TextEmptyLog(t *testing.T) {
	cfg := testConfig(t)
	_, err := execute(t, cfg, "challenge", "--record", "--seed", "3")
	require.NoError(t, err)

	out, err := execute(t, cfg, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "challenges: 1 recorded, 0 completed")
	assert.Contains(t, out, "no moves recorded")
}

func TestFormulasCommand(t *testing.T) {
	cfg := testConfig(t)

	out, err := execute(t, cfg, "formulas", "--section", "add")
	require.NoError(t, err)
	assert.Contains(t, out, "一、加法口诀")
	assert.Contains(t, out, "三下五去二")
	assert.NotContains(t, out, "二、减法口诀")

	resp, err := executeJSON(t, cfg, "formulas")
	require.NoError(t, err)
	got := decode[FormulasResult](t, resp.Data)
	assert.Len(t, got.Sections, 8)
	require.NotNil(t, got.Multiplication)
	assert.Equal(t, formula.MultiplicationTable(), *got.Multiplication)

	resp, err = executeJSON(t, cfg, "formulas", "--section", "sub")
	require.NoError(t, err)
	got = decode[FormulasResult](t, resp.Data)
	assert.Len(t, got.Sections, 4)
	assert.Nil(t, got.Multiplication)
}

func TestFormulasCommand_UnknownSection(t *testing.T) {
	resp, err := executeJSON(t, testConfig(t), "formulas", "--section", "div")
	require.Error(t, err)
	assert.Equal(t, ErrCodeInvalidInput, resp.Error.Code)
}

func TestDrillCommand_Pass(t *testing.T) {
	resp, err := executeJSON(t, testConfig(t), "drill", "../drill/testdata/drills/addition.yaml")
	require.NoError(t, err)
	got := decode[DrillResult](t, resp.Data)
	assert.Equal(t, "addition-basics", got.Name)
	assert.Zero(t, got.Failed)
	assert.Equal(t, 4, got.Checked)
}

func TestDrillCommand_FailureExitsOne(t *testing.T) {
	resp, err := executeJSON(t, testConfig(t), "drill", "../drill/testdata/drills/subtraction.cue")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Equal(t, ErrCodeDrillFailed, resp.Error.Code)
	assert.Equal(t, "1 of 4 expectations failed", resp.Error.Message)

	out, err := execute(t, testConfig(t), "drill", "../drill/testdata/drills/subtraction.cue")
	require.Error(t, err)
	assert.Contains(t, out, "summary: 4 steps, 4 checked, 1 failed")
	assert.Contains(t, out, "Error [E010]")
}

func TestDrillCommand_MissingFile(t *testing.T) {
	resp, err := executeJSON(t, testConfig(t), "drill", "does-not-exist.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
}

func TestReachableCommand(t *testing.T) {
	cfg := testConfig(t)

	resp, err := executeJSON(t, cfg, "reachable")
	require.NoError(t, err)
	got := decode[ReachableResult](t, resp.Data)
	assert.Equal(t, 126, got.Moves)
	assert.Equal(t, 118, got.Distinct)
	assert.Len(t, got.Fallback, 15)
	assert.Empty(t, got.Transitions)

	resp, err = executeJSON(t, cfg, "reachable", "--all")
	require.NoError(t, err)
	got = decode[ReachableResult](t, resp.Data)
	assert.Len(t, got.Transitions, 118)

	out, err := execute(t, cfg, "reachable")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 16)
	assert.Contains(t, lines[0], "15 fall back to 混合运算")
}
