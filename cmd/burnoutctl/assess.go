package main

import (
	"github.com/spf13/cobra"

	"burnout-check/internal/domain"
	"burnout-check/internal/model"
	"burnout-check/internal/service"
)

var assessInput domain.AssessmentInput

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Predict burnout risk and print the full assessment as JSON",
	RunE:  runAssess,
}

func init() {
	f := assessCmd.Flags()
	f.IntVar(&assessInput.Age, "age", 30, "Age in years")
	f.IntVar(&assessInput.Experience, "experience", 5, "Years of work experience")
	f.IntVar(&assessInput.WorkHours, "work-hours", 40, "Work hours per week")
	f.IntVar(&assessInput.RemoteRatio, "remote-ratio", 50, "Share of remote work (0-100)")
	f.Float64Var(&assessInput.Satisfaction, "satisfaction", 3, "Job satisfaction (1-5)")
	f.IntVar(&assessInput.Stress, "stress", 5, "Stress level (0-10)")
	f.StringVar(&assessInput.Gender, "gender", "Female", "Gender: Female or Male")
	f.StringVar(&assessInput.JobRole, "job-role", "Engineer", "Job role: Engineer, Analyst, HR, Manager or Sales")
}

func runAssess(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	pipeline, err := model.Load(cfg.ModelBackend, cfg.ModelPath, cfg.ScalerPath, cfg.ONNXLibPath)
	if err != nil {
		return err
	}
	defer pipeline.Close()

	svc := service.NewAssessmentService(pipeline, nil, nil, newLogger(cmd))
	result, err := svc.Assess(cmd.Context(), assessInput)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), result)
}
