package plateful

import (
	"fmt"
	"strings"

	"github.com/plateful-app/plateful-cli/internal/model"
	"github.com/plateful-app/plateful-cli/internal/nutrition"
	"github.com/plateful-app/plateful-cli/internal/store"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your body profile",
}

var (
	profileWeight   float64
	profileHeight   float64
	profileAge      int
	profileGender   string
	profileActivity string
	profileGoal     float64
	profileBodyFat  float64
	profileAvoid    []string
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or replace your profile (goals are re-derived)",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := model.UserProfile{
			WeightLbs:          profileWeight,
			HeightIn:           profileHeight,
			Age:                profileAge,
			Gender:             model.Gender(strings.ToLower(profileGender)),
			ActivityLevel:      model.ActivityLevel(strings.ToLower(profileActivity)),
			GoalWeightLbs:      profileGoal,
			AvoidedIngredients: profileAvoid,
		}
		if cmd.Flags().Changed("body-fat") {
			v := profileBodyFat
			p.BodyFatPct = &v
		}
		return withStore(func(s *store.Store) error {
			if err := s.SetProfile(p); err != nil {
				return err
			}
			goals := s.Goals()
			fmt.Fprintf(cmd.OutOrStdout(), "Profile saved (goal: %s)\n", s.Profile().GoalType)
			if goals != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Daily goals: %d kcal, %dg protein, %dg carbs, %dg fat\n",
					goals.Calories, goals.ProteinG, goals.CarbsG, goals.FatG)
			}
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show profile, BMI and TDEE",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			p := s.Profile()
			if p == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No profile yet; run `plateful profile set`")
				return nil
			}
			bmi := nutrition.BMI(p.WeightLbs, p.HeightIn)
			tdee := nutrition.TDEE(*p)
			fmt.Fprintf(cmd.OutOrStdout(), "Weight: %.1f lbs\nHeight: %.1f in\nAge: %d\nGender: %s\nActivity: %s\nGoal weight: %.1f lbs (%s)\n",
				p.WeightLbs, p.HeightIn, p.Age, p.Gender, p.ActivityLevel, p.GoalWeightLbs, p.GoalType)
			if p.BodyFatPct != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Body fat: %.1f%%\n", *p.BodyFatPct)
			}
			if len(p.AvoidedIngredients) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Avoiding: %s\n", strings.Join(p.AvoidedIngredients, ", "))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "BMI: %.1f (%s)\nTDEE: %d kcal\n", bmi, nutrition.BMICategory(bmi), tdee)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd, profileShowCmd)

	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Current weight in lbs")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height in inches")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "Age in years")
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "male or female")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "sedentary", "sedentary, moderate, active, very_active or athlete")
	profileSetCmd.Flags().Float64Var(&profileGoal, "goal-weight", 0, "Target weight in lbs")
	profileSetCmd.Flags().Float64Var(&profileBodyFat, "body-fat", 0, "Body fat percent")
	profileSetCmd.Flags().StringSliceVar(&profileAvoid, "avoid", nil, "Ingredients to avoid (repeatable)")
	_ = profileSetCmd.MarkFlagRequired("weight")
	_ = profileSetCmd.MarkFlagRequired("height")
	_ = profileSetCmd.MarkFlagRequired("age")
	_ = profileSetCmd.MarkFlagRequired("gender")
	_ = profileSetCmd.MarkFlagRequired("goal-weight")
}
