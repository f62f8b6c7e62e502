package main

import (
	"fmt"

	"github.com/milk9111/carpark/assets"
	"github.com/milk9111/carpark/ecs/entity"
	"github.com/milk9111/carpark/prefabs"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [scene]",
	Short: "Check a scene prefab without opening a window",
	Long:  `Loads the scene prefab, checks its invariants and decodes every image it references.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) > 0 {
			name = args[0]
		}
		warnings, err := validateScene(name)
		if err != nil {
			return err
		}
		for _, w := range warnings {
			fmt.Fprintln(cmd.OutOrStdout(), "warning:", w)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "scene is valid")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// validateScene returns an error for a scene the game cannot run and
// warnings for one it can run but probably should not.
func validateScene(name string) ([]string, error) {
	spec, err := prefabs.LoadSceneSpec(name)
	if err != nil {
		return nil, err
	}

	images := []string{spec.EndScene.Button.Image}
	for _, car := range spec.Cars {
		images = append(images, car.Sprite.Image, car.Hand.Image, car.Spot.Sprite.Image)
	}
	for _, el := range spec.EndScene.Elements {
		images = append(images, el.Sprite.Image)
	}
	for _, img := range images {
		if img == "" {
			continue
		}
		if _, err := assets.DecodeImage(img); err != nil {
			return nil, err
		}
	}

	var warnings []string
	scene := &entity.Scene{Spec: spec}
	for _, d := range scene.Draggables() {
		if d.Target.Contains(d.Home) {
			warnings = append(warnings, fmt.Sprintf("car %q starts inside its spot", d.ID))
		}
		if d.Target.Center.X < 0 || d.Target.Center.Y < 0 ||
			d.Target.Center.X > float64(spec.Width) || d.Target.Center.Y > float64(spec.Height) {
			warnings = append(warnings, fmt.Sprintf("car %q spot is off screen", d.ID))
		}
	}
	if len(spec.EndScene.Elements) == 0 {
		warnings = append(warnings, "end scene has no overlay elements")
	}
	return warnings, nil
}
