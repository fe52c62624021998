package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, environ map[string]string, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(context.Background(), args, strings.NewReader(stdin), &out, &errOut, environ)
	return code, out.String(), errOut.String()
}

func TestRun_Arguments(t *testing.T) {
	t.Parallel()

	code, stdout, _ := runCLI(t, nil, "", "120-81-47521", "2208162517", "9999999997")

	assert.Equal(t, exitOK, code)
	assert.Equal(t, strings.Join([]string{
		"120-81-47521\t120-81-47521\tfor_profit_corporate_hq",
		"2208162517\t220-81-62517\tfor_profit_corporate_hq",
		"9999999997\t999-99-99997\tindividual_tax_exempt",
	}, "\n")+"\n", stdout)
}

func TestRun_Stdin(t *testing.T) {
	t.Parallel()

	stdin := "1208147521\n\n  123 45 67891  \r\n1208147520\n12-34\n"
	code, stdout, stderr := runCLI(t, nil, stdin, "-grouped=false")

	assert.Equal(t, exitInvalid, code)
	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "1208147521\t1208147521\tfor_profit_corporate_hq", lines[0])
	assert.Equal(t, "123 45 67891\t1234567891\tindividual_taxable", lines[1])
	assert.Equal(t, "1208147520\tERROR\tchecksum_mismatch", lines[2])
	assert.Equal(t, "12-34\tERROR\tmalformed", lines[3])

	// rejected input is logged masked
	assert.Contains(t, stderr, "rejected")
	assert.NotContains(t, stderr, "1208147520")
	assert.Contains(t, stderr, "checksum_mismatch")
}

func TestRun_FullWidthInput(t *testing.T) {
	t.Parallel()

	code, stdout, _ := runCLI(t, nil, "", "１２０－８１－４７５２１")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "１２０－８１－４７５２１\t120-81-47521\tfor_profit_corporate_hq\n", stdout)
}

func TestRun_JSON(t *testing.T) {
	t.Parallel()

	code, stdout, _ := runCLI(t, nil, "", "-json", "1058512341", "1058512340")
	assert.Equal(t, exitInvalid, code)

	dec := json.NewDecoder(strings.NewReader(stdout))
	var ok, bad map[string]string
	require.NoError(t, dec.Decode(&ok))
	require.NoError(t, dec.Decode(&bad))

	assert.Equal(t, map[string]string{
		"input":       "1058512341",
		"brn":         "105-85-12341",
		"entity_type": "for_profit_corporate_branch",
	}, ok)
	assert.Equal(t, "1058512340", bad["input"])
	assert.Equal(t, "checksum_mismatch", bad["kind"])
	assert.Contains(t, bad["error"], "checksum mismatch")
	assert.NotContains(t, bad, "brn")
}

func TestRun_CheckDigit(t *testing.T) {
	t.Parallel()

	code, stdout, _ := runCLI(t, nil, "", "-check-digit", "120814752", "220-81-6251", "12345")
	assert.Equal(t, exitInvalid, code)
	assert.Equal(t, strings.Join([]string{
		"120814752\t1\t120-81-47521",
		"220-81-6251\t7\t220-81-62517",
		"12345\tERROR\tmalformed",
	}, "\n")+"\n", stdout)
}

func TestRun_Environment(t *testing.T) {
	t.Parallel()

	environ := map[string]string{
		"APP_ENV":          "production",
		"LOG_LEVEL":        "debug",
		"BRNCHECK_OUTPUT":  "json",
		"BRNCHECK_GROUPED": "false",
	}
	code, stdout, stderr := runCLI(t, environ, "", "3148601237")
	assert.Equal(t, exitOK, code)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "3148601237", got["brn"])
	assert.Equal(t, "for_profit_corporate_hq", got["entity_type"])

	// production logs JSON with the environment attached
	var entry map[string]any
	line, _, _ := strings.Cut(stderr, "\n")
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "accepted", entry["msg"])
	assert.Equal(t, "314-86-01237", entry["brn"])
	assert.Equal(t, "production", entry["env"])

	// flags override the environment
	_, stdout, _ = runCLI(t, environ, "", "-json=false", "-grouped", "3148601237")
	assert.Equal(t, "3148601237\t314-86-01237\tfor_profit_corporate_hq\n", stdout)
}

func TestRun_UsageErrors(t *testing.T) {
	t.Parallel()

	code, _, stderr := runCLI(t, nil, "", "-unknown")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "usage: brncheck")

	code, _, stderr = runCLI(t, map[string]string{"LOG_LEVEL": "loud"}, "", "1208147521")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "invalid log level")

	code, _, _ = runCLI(t, map[string]string{"BRNCHECK_GROUPED": "maybe"}, "", "1208147521")
	assert.Equal(t, exitUsage, code)

	code, _, stderr = runCLI(t, map[string]string{"BRNCHECK_OUTPUT": "xml"}, "", "1208147521")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "unknown output")

	code, _, _ = runCLI(t, nil, "", "-h")
	assert.Equal(t, exitOK, code)
}
