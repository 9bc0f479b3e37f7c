// Package contentcheck reads a file and checks what it contains.
package contentcheck

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"

	"github.com/vertti/slurp/pkg/check"
	"github.com/vertti/slurp/pkg/reader"
)

// ContentReader reads a whole file as text. *reader.Reader implements it.
type ContentReader interface {
	Read(path string) reader.Result
}

// Check reads a file and verifies its contents meet requirements.
type Check struct {
	Path         string        // path to read
	NotEmpty     bool          // --not-empty: file must have content
	Contains     string        // --contains: literal string to search
	Match        string        // --match: regex pattern for content
	JSONKey      string        // --json-key: key that must exist (gjson path)
	JSONExact    string        // --json-exact: expected value at JSONKey
	Digest       Algorithm     // --digest: report the content digest
	ExpectDigest string        // --expect-digest: expected hex digest
	Reader       ContentReader // injected for testing
}

// Run executes the content check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("read: %s", c.Path),
	}

	rd := c.Reader
	if rd == nil {
		rd = &reader.Reader{}
	}

	res := rd.Read(c.Path)
	if !res.OK() {
		return failRead(&result, res.Err)
	}
	content := res.Contents

	result.AddDetailf("bytes: %d", len(content))
	result.AddDetailf("chars: %d", utf8.RuneCountInString(content))
	result.AddDetailf("lines: %d", countLines(content))

	if c.NotEmpty && content == "" {
		return result.Fail("file is empty", fmt.Errorf("file is empty"))
	}

	if c.Contains != "" && !strings.Contains(content, c.Contains) {
		return result.Failf("content does not contain %q", c.Contains)
	}

	if c.Match != "" {
		re, err := check.CompileRegex(c.Match)
		if err != nil {
			return result.Failf("invalid regex pattern: %v", err)
		}
		if !re.MatchString(content) {
			return result.Failf("content does not match pattern %q", c.Match)
		}
	}

	if c.JSONKey != "" {
		if err := c.checkJSON(content, &result); err != nil {
			return result
		}
	}

	if c.Digest != "" || c.ExpectDigest != "" {
		if err := c.checkDigest(content, &result); err != nil {
			return result
		}
	}

	return result.Pass()
}

func failRead(result *check.Result, err *reader.Error) check.Result {
	switch {
	case err.Kind == reader.KindNotFound:
		return result.Fail("not found", err)
	case err.IsPermission():
		return result.Fail("permission denied", err)
	default:
		return result.Fail(fmt.Sprintf("read failed: %v", err.Err), err)
	}
}

func (c *Check) checkJSON(content string, result *check.Result) error {
	if !gjson.Valid(content) {
		err := fmt.Errorf("invalid JSON syntax")
		result.Fail("invalid JSON", err)
		return err
	}

	value := gjson.Get(content, c.JSONKey)
	if !value.Exists() {
		err := fmt.Errorf("key %q not found", c.JSONKey)
		result.Fail(err.Error(), err)
		return err
	}

	valueStr := value.String()
	if value.Type == gjson.Null {
		valueStr = "null"
	}

	if c.JSONExact != "" && valueStr != c.JSONExact {
		err := fmt.Errorf("value %q does not equal %q", valueStr, c.JSONExact)
		result.Fail(err.Error(), err)
		return err
	}

	result.AddDetailf("key %s: %s", c.JSONKey, valueStr)
	return nil
}

func (c *Check) checkDigest(content string, result *check.Result) error {
	algorithm := c.Digest
	if algorithm == "" {
		algorithm = AlgorithmSHA256
	}

	actual, err := algorithm.Sum(content)
	if err != nil {
		result.Fail("unsupported digest", err)
		return err
	}
	result.AddDetailf("%s: %s", algorithm, actual)

	if c.ExpectDigest != "" && !strings.EqualFold(actual, c.ExpectDigest) {
		err := fmt.Errorf("%s digest %s does not match expected %s", algorithm, actual, c.ExpectDigest)
		result.Fail("digest mismatch", err)
		return err
	}
	return nil
}

// countLines counts newline-terminated lines plus a trailing unterminated one.
func countLines(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}
