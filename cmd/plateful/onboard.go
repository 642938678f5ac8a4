package plateful

import (
	"fmt"
	"strings"

	"github.com/plateful-app/plateful-cli/internal/model"
	"github.com/plateful-app/plateful-cli/internal/nutrition"
	"github.com/plateful-app/plateful-cli/internal/store"
	"github.com/spf13/cobra"
)

var (
	onboardWeight   float64
	onboardHeight   float64
	onboardAge      int
	onboardGender   string
	onboardActivity string
	onboardGoal     float64
	onboardBodyFat  float64
	onboardAvoid    []string
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Set up your profile and walk through the derived goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := model.UserProfile{
			WeightLbs:          onboardWeight,
			HeightIn:           onboardHeight,
			Age:                onboardAge,
			Gender:             model.Gender(strings.ToLower(onboardGender)),
			ActivityLevel:      model.ActivityLevel(strings.ToLower(onboardActivity)),
			GoalWeightLbs:      onboardGoal,
			AvoidedIngredients: onboardAvoid,
		}
		if cmd.Flags().Changed("body-fat") {
			v := onboardBodyFat
			p.BodyFatPct = &v
		}
		return withStore(func(s *store.Store) error {
			if err := s.SetProfile(p); err != nil {
				return err
			}
			saved := s.Profile()
			out := cmd.OutOrStdout()

			bmi := nutrition.BMI(saved.WeightLbs, saved.HeightIn)
			tdee := nutrition.TDEE(*saved)
			proj := nutrition.GoalCalories(tdee, saved.GoalType, saved.WeightLbs-saved.GoalWeightLbs)
			goals := s.Goals()

			fmt.Fprintf(out, "Welcome to plateful!\n\n")
			fmt.Fprintf(out, "BMI: %.1f (%s)\n", bmi, nutrition.BMICategory(bmi))
			fmt.Fprintf(out, "Maintenance (TDEE): %d kcal/day\n", tdee)
			switch saved.GoalType {
			case model.GoalLose:
				fmt.Fprintf(out, "Plan: lose %.1f lbs with a %d kcal/day deficit, about %d week(s)\n",
					saved.WeightLbs-saved.GoalWeightLbs, proj.Deficit, proj.WeeksToGoal)
			case model.GoalGain:
				fmt.Fprintf(out, "Plan: gain %.1f lbs with a %d kcal/day surplus, about %d week(s)\n",
					saved.GoalWeightLbs-saved.WeightLbs, -proj.Deficit, proj.WeeksToGoal)
			default:
				fmt.Fprintln(out, "Plan: maintain your current weight")
			}
			fmt.Fprintf(out, "Daily goals: %d kcal, %dg protein, %dg carbs, %dg fat\n",
				goals.Calories, goals.ProteinG, goals.CarbsG, goals.FatG)
			fmt.Fprintln(out, "\nNext: `plateful log ai \"...\"` to log your first meal")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(onboardCmd)

	onboardCmd.Flags().Float64Var(&onboardWeight, "weight", 0, "Current weight in lbs")
	onboardCmd.Flags().Float64Var(&onboardHeight, "height", 0, "Height in inches")
	onboardCmd.Flags().IntVar(&onboardAge, "age", 0, "Age in years")
	onboardCmd.Flags().StringVar(&onboardGender, "gender", "", "male or female")
	onboardCmd.Flags().StringVar(&onboardActivity, "activity", "sedentary", "sedentary, moderate, active, very_active or athlete")
	onboardCmd.Flags().Float64Var(&onboardGoal, "goal-weight", 0, "Target weight in lbs")
	onboardCmd.Flags().Float64Var(&onboardBodyFat, "body-fat", 0, "Body fat percent")
	onboardCmd.Flags().StringSliceVar(&onboardAvoid, "avoid", nil, "Ingredients to avoid (repeatable)")
	_ = onboardCmd.MarkFlagRequired("weight")
	_ = onboardCmd.MarkFlagRequired("height")
	_ = onboardCmd.MarkFlagRequired("age")
	_ = onboardCmd.MarkFlagRequired("gender")
	_ = onboardCmd.MarkFlagRequired("goal-weight")
}
