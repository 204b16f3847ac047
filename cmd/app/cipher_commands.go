package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/ciphers/cmd/app/commands"
	"github.com/allisson/ciphers/internal/app"
	cipherDomain "github.com/allisson/ciphers/internal/cipher/domain"
	"github.com/allisson/ciphers/internal/config"
)

func getCipherCommands() []*cli.Command {
	return []*cli.Command{
		transformCommand(cipherDomain.Encrypt, "Encrypt text or a file"),
		transformCommand(cipherDomain.Decrypt, "Decrypt text or a container file"),
		{
			Name:  "ciphers",
			Usage: "List the supported ciphers and the key fields they read",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunListCiphers(commands.DefaultIO().Writer, cmd.String("output"))
			},
		},
	}
}

func transformCommand(direction cipherDomain.Direction, usage string) *cli.Command {
	return &cli.Command{
		Name:  string(direction),
		Usage: usage,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "cipher",
				Aliases: []string{"c"},
				Usage:   "Cipher id: shift, substitution, affine, vigenere, hill, permutation, playfair or otp",
			},
			&cli.StringFlag{
				Name:    "key-file",
				Aliases: []string{"k"},
				Usage:   "YAML key file; flags below override its fields",
			},
			&cli.IntFlag{Name: "shift", Usage: "Shift amount (shift)"},
			&cli.IntFlag{Name: "a", Usage: "Multiplier (affine)"},
			&cli.IntFlag{Name: "b", Usage: "Offset (affine)"},
			&cli.StringFlag{Name: "keyword", Usage: "Keyword (vigenere, playfair)"},
			&cli.StringFlag{Name: "alphabet", Usage: "26-letter cipher alphabet (substitution)"},
			&cli.StringFlag{Name: "matrix", Usage: "2x2 key matrix, row-major, e.g. 3,3,2,5 (hill)"},
			&cli.StringFlag{Name: "order", Usage: "Block permutation, e.g. 3,1,2 (permutation)"},
			&cli.StringFlag{Name: "pad-file", Usage: "File holding the pad (otp)"},
			&cli.StringFlag{Name: "pad-text", Usage: "Pad given as text (otp)"},
			&cli.StringFlag{
				Name:    "text",
				Aliases: []string{"t"},
				Usage:   "Text to transform; read from stdin when empty and --in is not set",
			},
			&cli.StringFlag{
				Name:    "in",
				Aliases: []string{"i"},
				Usage:   "Input file; selects binary mode",
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "Output file for binary mode ('-' for stdout); defaults to the suggested name next to --in",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "normal",
				Usage:   "Text layout: 'normal', 'nospace' or 'groups'",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "text",
				Usage:   "Output format: 'text' or 'json'",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := config.Load()
			container := app.NewContainer(cfg)
			defer func() { _ = container.Shutdown(ctx) }()

			useCase, err := container.TransformUseCase()
			if err != nil {
				return err
			}

			return commands.RunTransform(
				ctx,
				useCase,
				container.Logger(),
				commands.TransformOptions{
					Cipher:    cmd.String("cipher"),
					Direction: direction,
					Key:       keyOptionsFromFlags(cmd),
					Text:      cmd.String("text"),
					InPath:    cmd.String("in"),
					OutPath:   cmd.String("out"),
					Format:    cmd.String("format"),
					Output:    cmd.String("output"),
				},
				commands.DefaultIO(),
			)
		},
	}
}

// keyOptionsFromFlags keeps unset integer flags nil so that they do not override
// the key file.
func keyOptionsFromFlags(cmd *cli.Command) commands.KeyOptions {
	opts := commands.KeyOptions{
		File:     cmd.String("key-file"),
		Keyword:  cmd.String("keyword"),
		Alphabet: cmd.String("alphabet"),
		Matrix:   cmd.String("matrix"),
		Order:    cmd.String("order"),
		PadFile:  cmd.String("pad-file"),
		PadText:  cmd.String("pad-text"),
	}
	for name, target := range map[string]**int{"shift": &opts.Shift, "a": &opts.A, "b": &opts.B} {
		if cmd.IsSet(name) {
			v := int(cmd.Int(name))
			*target = &v
		}
	}
	return opts
}
