package main

import (
	"github.com/spf13/cobra"

	"github.com/vertti/slurp/pkg/contentcheck"
)

var (
	readNotEmpty     bool
	readContains     string
	readMatch        string
	readJSONKey      string
	readJSONExact    string
	readDigest       string
	readExpectDigest string
)

var readCmd = &cobra.Command{
	Use:   "read [path]",
	Short: "Read a file and check its contents",
	Long: "Read a file and report its size, character and line counts. Optional " +
		"flags check what the contents hold. Without a path, README.md is read.",
	Args: cobra.MaximumNArgs(1),
	RunE: runReadCheck,
}

func init() {
	readCmd.Flags().BoolVar(&readNotEmpty, "not-empty", false, "file must have content")
	readCmd.Flags().StringVar(&readContains, "contains", "", "literal string to search in content")
	readCmd.Flags().StringVar(&readMatch, "match", "", "regex pattern to match content")
	readCmd.Flags().StringVar(&readJSONKey, "json-key", "", "key that must exist in JSON content (dot notation)")
	readCmd.Flags().StringVar(&readJSONExact, "json-exact", "", "expected value at --json-key")
	readCmd.Flags().StringVar(&readDigest, "digest", "", "report content digest: sha256, sha512 or blake3")
	readCmd.Flags().StringVar(&readExpectDigest, "expect-digest", "", "expected hex digest (requires --digest)")
	rootCmd.AddCommand(readCmd)
}

func runReadCheck(cmd *cobra.Command, args []string) error {
	path := defaultPath
	if len(args) == 1 {
		path = args[0]
	}

	digestName := settings.Digest
	if cmd.Flags().Changed("digest") {
		digestName = readDigest
	}

	if err := requireWith(
		flagValue{"--json-exact", readJSONExact},
		flagValue{"--json-key", readJSONKey},
	); err != nil {
		return err
	}
	if err := requireWith(
		flagValue{"--expect-digest", readExpectDigest},
		flagValue{"--digest", digestName},
	); err != nil {
		return err
	}

	digest, err := contentcheck.ParseAlgorithm(digestName)
	if err != nil {
		return err
	}

	c := &contentcheck.Check{
		Path:         path,
		NotEmpty:     readNotEmpty,
		Contains:     readContains,
		Match:        readMatch,
		JSONKey:      readJSONKey,
		JSONExact:    readJSONExact,
		Digest:       digest,
		ExpectDigest: readExpectDigest,
		Reader:       newReader(),
	}

	return runCheck(cmd, c)
}
