package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/javagen/java"
)

func newHelloCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hello",
		Short: "Print a sample generated HelloWorld class",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			main, err := java.NewMethod("main").
				AddModifiers(java.Public, java.Static).
				AddParameter(java.ArrayOf(java.StringType), "args").
				AddStatement("$T.out.println($S)",
					java.ClassType("java.lang", "System"), "Hello, World!").
				Build()
			if err != nil {
				return err
			}

			hello, err := java.NewClass("HelloWorld").
				AddModifiers(java.Public, java.Final).
				AddMethod(main).
				Build()
			if err != nil {
				return err
			}

			file, err := java.NewFile("com.example", hello).Build()
			if err != nil {
				return err
			}

			text, err := file.MarshalText()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(text)
			return err
		},
	}
}
