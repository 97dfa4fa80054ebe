package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/konceptosociala/hexcrypt/pkg/app"
	configcmd "github.com/konceptosociala/hexcrypt/pkg/cmd/config"
	"github.com/konceptosociala/hexcrypt/pkg/hexcrypt"
)

// Execute is the single entry point for the CLI.
func Execute(version, commit string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New()
	root := New(a, version, commit)
	a.Root = root
	return root.ExecuteContext(ctx)
}

// New builds the hexcrypt root command.
func New(a *app.App, version, commit string) *cobra.Command {
	root := &cobra.Command{
		Use:   "hexcrypt",
		Short: "Convert UTF-8 text files into RGB images and back",
		Long: "Convert UTF-8 text files into RGB images and back. Every 3 bytes of " +
			"text become one pixel; spare pixels are zero-padded. Despite the name " +
			"no cryptography is involved.",
		Example: `  hexcrypt -e input.txt
  hexcrypt -e input.txt -s 16x32 -o out.png
  hexcrypt -d out.png`,
		Version:      fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.OutWriter = cmd.OutOrStdout()
			a.ErrWriter = cmd.ErrOrStderr()
			a.InReader = cmd.InOrStdin()

			if a.OutWriter != os.Stdout {
				a.ColorableOut = a.OutWriter
			}

			return a.InitConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.DecryptPath != "" {
				return runDecrypt(a)
			}
			return runEncrypt(cmd, a)
		},
	}

	root.PersistentFlags().StringVar(&a.CfgFile, "config", "", "config file (default is $HOME/.hexcrypt/config)")

	flags := root.Flags()
	flags.StringVarP(&a.EncryptPath, "encrypt", "e", "", "Path to the text file to be encrypted")
	flags.StringVarP(&a.DecryptPath, "decrypt", "d", "", "Path to the image to be decrypted")
	flags.StringVarP(&a.OutputPath, "output", "o", "", "Path to the output file (default is the input path with a swapped extension)")
	flags.StringVarP(&a.SizeSpec, "size", "s", "", "Custom image size, e.g. 16x32, or a preset name from the config file")
	flags.BoolVarP(&a.Verbose, "verbose", "v", false, "Print the resolved image dimensions")

	root.MarkFlagsOneRequired("encrypt", "decrypt")
	root.MarkFlagsMutuallyExclusive("encrypt", "decrypt")
	root.MarkFlagsMutuallyExclusive("decrypt", "size")

	root.AddCommand(
		configcmd.NewCommand(a),
	)

	return root
}

func runEncrypt(cmd *cobra.Command, a *app.App) error {
	var size *hexcrypt.Dimensions
	if cmd.Flags().Changed("size") {
		dim, err := hexcrypt.ParseSize(a.Cfg.ResolveSize(a.SizeSpec))
		if err != nil {
			return err
		}
		size = &dim
	}

	outPath := a.OutputPath
	if outPath == "" {
		outPath = hexcrypt.ReplaceExt(a.EncryptPath, "."+a.Cfg.Format())
	}

	dim, err := hexcrypt.Encrypt(a.EncryptPath, outPath, size)
	if err != nil {
		return err
	}

	if a.Verbose {
		fmt.Fprintf(a.ErrWriter, "image size: %s\n", dim)
	}
	fmt.Fprintf(a.ColorableOut, "Wrote %s.\n", outPath)
	return nil
}

func runDecrypt(a *app.App) error {
	outPath := a.OutputPath
	if outPath == "" {
		outPath = hexcrypt.ReplaceExt(a.DecryptPath, ".txt")
	}

	if err := hexcrypt.Decrypt(a.DecryptPath, outPath); err != nil {
		return err
	}

	fmt.Fprintf(a.ColorableOut, "Wrote %s.\n", outPath)
	return nil
}
