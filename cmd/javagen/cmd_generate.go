package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/javagen/model"
)

func newGenerateCmd() *cobra.Command {
	var outputDir string
	var toStdout bool

	cmd := &cobra.Command{
		Use:   "generate [file...]",
		Short: "Render .java files from YAML or JSON descriptions",
		Long: `Render .java files from YAML or JSON file descriptions.

Each argument names a description file. With no arguments, a single
description is read from stdin.

Generated sources are written below the output directory, one
subdirectory per package segment. Use --stdout to print them instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := commonlog.GetLogger("javagen.generate")

			if len(args) == 0 {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				return generate(cmd, log, data, outputDir, toStdout)
			}

			for _, filename := range args {
				data, err := os.ReadFile(filename)
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
				if err := generate(cmd, log, data, outputDir, toStdout); err != nil {
					return fmt.Errorf("%s: %w", filename, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "out", "o", ".", "directory to write generated sources to")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "print generated sources instead of writing files")

	return cmd
}

func generate(cmd *cobra.Command, log commonlog.Logger, data []byte, outputDir string, toStdout bool) error {
	description, err := model.Decode(data)
	if err != nil {
		return err
	}
	file, err := model.Build(description)
	if err != nil {
		return err
	}

	if toStdout {
		text, err := file.MarshalText()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(text)
		return err
	}

	path, err := file.WriteFile(outputDir)
	if err != nil {
		return err
	}
	log.Infof("wrote %s", path)
	return nil
}
