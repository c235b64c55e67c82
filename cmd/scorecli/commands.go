package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"resume-scoring/internal/extract"
	"resume-scoring/internal/scoring"
	"resume-scoring/internal/shared/telemetry"
)

func newAssessCmd(v *viper.Viper) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Assess resume content quality",
		Long: `Extracts text from a PDF, DOCX or plain text resume and reports
content metrics, quality label and any issues found.

Examples:
  scorecli assess --file resume.pdf
  scorecli assess --file resume.docx -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			text, err := readResume(cmd.Context(), file, cfg.MaxUploadBytes)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), cfg.Format, scoring.Assess(text, nil))
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "resume file (PDF, DOCX or text)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newEvaluateCmd(v *viper.Viper) *cobra.Command {
	var (
		file  string
		base  float64
		hasJD bool
	)
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Adjust a base match score by resume quality and candidate level",
		Long: `Assesses the resume, applies the quality multiplier and level bonus to
the base score, then reports confidence and the match band.

Examples:
  scorecli evaluate --file resume.pdf --base 78 --level senior --jd`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			text, err := readResume(cmd.Context(), file, cfg.MaxUploadBytes)
			if err != nil {
				return err
			}
			result := scoring.Evaluate(scoring.EvaluateInput{
				ResumeText:        text,
				BaseScore:         base,
				Level:             scoring.ParseCandidateLevel(cfg.Level),
				HasJobDescription: hasJD,
			})
			telemetry.Info("scorecli.evaluated", map[string]any{
				"file":        filepath.Base(file),
				"final_score": result.Adjustment.FinalScore,
			})
			return render(cmd.OutOrStdout(), cfg.Format, result)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "resume file (PDF, DOCX or text)")
	cmd.Flags().Float64Var(&base, "base", 0, "base match score from 0 to 100")
	cmd.Flags().String("level", "", "candidate level: fresher, junior, mid or senior")
	cmd.Flags().BoolVar(&hasJD, "jd", false, "the score was computed against a job description")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("base")
	_ = v.BindPFlag("level", cmd.Flags().Lookup("level"))
	return cmd
}

func newWeightsCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "weights [level]",
		Short: "Show tier weights for a candidate level",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			raw := cfg.Level
			if len(args) == 1 {
				raw = args[0]
			}
			level := scoring.ParseCandidateLevel(raw)
			table := scoring.WeightsFor(level)
			return render(cmd.OutOrStdout(), cfg.Format, map[string]any{
				"level":   level,
				"weights": table,
				"total":   table.Total(),
			})
		},
	}
}

func newBandCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "band <score>",
		Short: "Show the match band and interview probability for a score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			score, err := strconv.Atoi(strings.TrimSpace(args[0]))
			if err != nil {
				return fmt.Errorf("score must be an integer: %w", err)
			}
			return render(cmd.OutOrStdout(), cfg.Format, map[string]any{
				"score":                score,
				"matchBand":            scoring.MatchBand(score),
				"interviewProbability": scoring.InterviewProbability(score),
			})
		},
	}
}

func readResume(ctx context.Context, path string, maxBytes int64) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open resume: %w", err)
	}
	defer f.Close()

	if maxBytes <= 0 {
		maxBytes = 10 << 20
	}
	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read resume: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return "", fmt.Errorf("resume exceeds %d bytes", maxBytes)
	}
	text, err := extract.ResumeText(ctx, data, "", filepath.Base(path))
	if err != nil {
		return "", fmt.Errorf("extract text: %w", err)
	}
	return text, nil
}
