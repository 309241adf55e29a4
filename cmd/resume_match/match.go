package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-match/internal/config"
	"github.com/jonathan/resume-match/internal/fetch"
	"github.com/jonathan/resume-match/internal/matching"
	"github.com/jonathan/resume-match/internal/observability"
	"github.com/jonathan/resume-match/internal/parsing"
	"github.com/jonathan/resume-match/internal/types"
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a resume against a job description",
	Long:  "Match a resume (raw text or previously parsed JSON) against a job description from a file or URL, producing ranked bullets, matched skills and an overall score.",
	RunE:  runMatch,
}

var (
	matchResumeFile string
	matchResumeJSON string
	matchJobFile    string
	matchJobURL     string
	matchOutputFile string
	matchConfigFile string
	matchVerbose    bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchResumeFile, "resume", "r", "", "Path to extracted resume text file")
	matchCmd.Flags().StringVar(&matchResumeJSON, "resume-json", "", "Path to a previously parsed ResumeJSON file")
	matchCmd.Flags().StringVarP(&matchJobFile, "job", "j", "", "Path to job description text file")
	matchCmd.Flags().StringVar(&matchJobURL, "job-url", "", "URL to fetch the job posting from")
	matchCmd.Flags().StringVarP(&matchOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	matchCmd.Flags().StringVarP(&matchConfigFile, "config", "c", "", "Path to JSON config file supplying flag defaults")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print a formatted summary to stderr")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	flags := config.Config{
		Resume:  matchResumeFile,
		Job:     matchJobFile,
		JobURL:  matchJobURL,
		Out:     matchOutputFile,
		Verbose: matchVerbose,
	}

	cfg := flags
	if matchConfigFile != "" {
		fileCfg, err := config.LoadConfig(matchConfigFile)
		if err != nil {
			return err
		}
		cfg = flags.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("one of --job or --job-url is required")
	}
	if matchResumeJSON == "" && cfg.Resume == "" {
		return fmt.Errorf("one of --resume or --resume-json is required")
	}

	resume, err := loadResume(cfg.Resume)
	if err != nil {
		return err
	}

	jd, err := loadJobDescription(cmd.Context(), cfg.Job, cfg.JobURL)
	if err != nil {
		return err
	}

	result := matching.MatchJobDescription(jd, resume)

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if cfg.Out != "" {
		if err := os.WriteFile(cfg.Out, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
	} else {
		fmt.Println(string(jsonBytes))
	}

	if err := validateAgainstSchema("schemas/match_result.schema.json", result); err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintMatchResult(&result)
	}

	return nil
}

// loadResume reads the resume either from a parsed JSON document
// (--resume-json) or by parsing raw text (--resume).
func loadResume(resumePath string) (types.ResumeJSON, error) {
	if matchResumeJSON != "" {
		data, err := os.ReadFile(matchResumeJSON)
		if err != nil {
			return types.ResumeJSON{}, fmt.Errorf("failed to read resume JSON: %w", err)
		}
		var resume types.ResumeJSON
		if err := json.Unmarshal(data, &resume); err != nil {
			return types.ResumeJSON{}, fmt.Errorf("failed to parse resume JSON: %w", err)
		}
		return resume, nil
	}

	data, err := os.ReadFile(resumePath)
	if err != nil {
		return types.ResumeJSON{}, fmt.Errorf("failed to read resume text: %w", err)
	}
	return parsing.ParseResumeText(string(data)), nil
}

// loadJobDescription reads the job description from a file, or fetches and
// extracts it when only a URL was given.
func loadJobDescription(ctx context.Context, jobPath, jobURL string) (string, error) {
	if jobPath != "" {
		data, err := os.ReadFile(jobPath)
		if err != nil {
			return "", fmt.Errorf("failed to read job description: %w", err)
		}
		return string(data), nil
	}
	return fetch.JobDescription(ctx, jobURL, nil)
}
