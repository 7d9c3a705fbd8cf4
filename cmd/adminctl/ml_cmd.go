package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/procurehub/adminapi/models"
)

var (
	mlModelsPage      int
	mlTrainType       string
	mlTrainIterations int
	mlTrainWorkDir    string

	predictionProcurement int64
	predictionPage        int
	predictProcurement    int64
	predictType           string
)

var mlCmd = &cobra.Command{
	Use:   "ml",
	Short: "Work with the backend's analytics models and predictions",
}

var mlModelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Manage trained analytics models",
}

var mlModelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered analytics models",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *client) error {
			page, err := c.api.ListMLModels(ctx, mlModelsPage)
			if err != nil {
				return err
			}
			return printJSON(page)
		})
	},
}

var mlModelsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one analytics model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *client) error {
			model, err := c.api.GetMLModel(ctx, id)
			if err != nil {
				return err
			}
			return printJSON(model)
		})
	},
}

var mlModelsTrainCmd = &cobra.Command{
	Use:   "train",
	Short: "Trigger a training run (synchronous, can be slow)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *client) error {
			model, err := c.api.TrainMLModel(ctx, models.TrainModelRequest{
				ModelType:     mlTrainType,
				MaxIterations: mlTrainIterations,
				WorkDir:       mlTrainWorkDir,
			})
			if err != nil {
				return err
			}
			return printJSON(model)
		})
	},
}

var mlStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report whether the backend's ML toolchain is available",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *client) error {
			status, err := c.api.MLStatus(ctx)
			if err != nil {
				return err
			}
			return printJSON(status)
		})
	},
}

var mlPredictionsCmd = &cobra.Command{
	Use:   "predictions",
	Short: "Browse stored predictions",
}

var mlPredictionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List predictions matching the filter",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *client) error {
			page, err := c.api.ListPredictions(ctx, models.PredictionFilter{
				Procurement: predictionProcurement,
				Page:        predictionPage,
			})
			if err != nil {
				return err
			}
			return printJSON(page)
		})
	},
}

var mlPredictionsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one prediction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return withClient(func(ctx context.Context, c *client) error {
			prediction, err := c.api.GetPrediction(ctx, id)
			if err != nil {
				return err
			}
			return printJSON(prediction)
		})
	},
}

var mlPredictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Request an instant rule-based prediction for a listing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *client) error {
			prediction, err := c.api.Predict(ctx, models.PredictRequest{
				ProcurementID:  predictProcurement,
				PredictionType: predictType,
			})
			if err != nil {
				return err
			}
			return printJSON(prediction)
		})
	},
}

func init() {
	mlModelsListCmd.Flags().IntVar(&mlModelsPage, "page", 0, "Result page number")

	mlModelsTrainCmd.Flags().StringVar(&mlTrainType, "type", "", "Model type (success_prediction, demand_forecast, price_optimization)")
	mlModelsTrainCmd.Flags().IntVar(&mlTrainIterations, "max-iterations", 0, "Training iteration cap (0 = backend default)")
	mlModelsTrainCmd.Flags().StringVar(&mlTrainWorkDir, "work-dir", "", "Backend working directory for the run")
	_ = mlModelsTrainCmd.MarkFlagRequired("type")

	mlPredictionsListCmd.Flags().Int64Var(&predictionProcurement, "procurement", 0, "Restrict to one listing id")
	mlPredictionsListCmd.Flags().IntVar(&predictionPage, "page", 0, "Result page number")

	mlPredictCmd.Flags().Int64Var(&predictProcurement, "procurement", 0, "Listing id to predict for")
	mlPredictCmd.Flags().StringVar(&predictType, "type", "", "Prediction type (defaults to success prediction)")
	_ = mlPredictCmd.MarkFlagRequired("procurement")

	mlModelsCmd.AddCommand(mlModelsListCmd, mlModelsGetCmd, mlModelsTrainCmd, mlStatusCmd)
	mlPredictionsCmd.AddCommand(mlPredictionsListCmd, mlPredictionsGetCmd)
	mlCmd.AddCommand(mlModelsCmd, mlPredictionsCmd, mlPredictCmd)
	rootCmd.AddCommand(mlCmd)
}
