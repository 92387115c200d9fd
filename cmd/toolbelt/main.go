package main

import (
	"log"
	"os"

	"github.com/fr3shw3b/toolbelt/internal/toolbeltapp"
	"github.com/fr3shw3b/toolbelt/pkg/config"
	"github.com/urfave/cli/v2"
)

func main() {
	var toolbelt *toolbeltapp.App

	app := cli.App{
		Name:  "toolbelt",
		Usage: "Random values, key pairs and number coercion",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Value: config.DefaultEnvFile,
				Usage: "The dotenv file to read configuration from, if it exists",
			},
		},
		Before: func(cCtx *cli.Context) error {
			var err error
			toolbelt, err = toolbeltapp.New(cCtx.String("env-file"), os.Stdout)
			return err
		},
		Commands: []*cli.Command{
			{
				Name:  "uuid",
				Usage: "Print a random version 4 UUID",
				Action: func(cCtx *cli.Context) error {
					return toolbelt.UUID()
				},
			},
			{
				Name:  "sequence",
				Usage: "Print a cryptographically strong hex sequence",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "size",
						Value: 32,
						Usage: "The number of hex characters, a multiple of 2",
					},
				},
				Action: func(cCtx *cli.Context) error {
					return toolbelt.Sequence(cCtx.Context, cCtx.Int("size"))
				},
			},
			{
				Name:  "int",
				Usage: "Print a random integer n such that min <= n < max",
				Flags: []cli.Flag{
					&cli.Int64Flag{
						Name:  "min",
						Value: 0,
						Usage: "The inclusive lower bound",
					},
					&cli.Int64Flag{
						Name:     "max",
						Required: true,
						Usage:    "The exclusive upper bound",
					},
				},
				Action: func(cCtx *cli.Context) error {
					return toolbelt.Int(cCtx.Context, cCtx.Int64("min"), cCtx.Int64("max"))
				},
			},
			{
				Name:  "code",
				Usage: "Print a pseudorandom numeric code, not for secrets",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "size",
						Value: 6,
						Usage: "The number of digits",
					},
				},
				Action: func(cCtx *cli.Context) error {
					return toolbelt.Code(cCtx.Context, cCtx.Int("size"))
				},
			},
			{
				Name:  "rsa",
				Usage: "Print a PEM encoded RSA key pair",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "passphrase",
						EnvVars: []string{"RSA_PASSPHRASE"},
						Usage:   "Encrypts the private key when set",
					},
				},
				Action: func(cCtx *cli.Context) error {
					return toolbelt.RSA(cCtx.String("passphrase"))
				},
			},
			{
				Name:      "number",
				Usage:     "Coerce a string to an integer",
				ArgsUsage: "<value>",
				Action: func(cCtx *cli.Context) error {
					return toolbelt.Number(cCtx.Context, cCtx.Args().First())
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
