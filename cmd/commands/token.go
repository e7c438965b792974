package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/arinkulshi/diet-recommendation-tool/utils"

	"github.com/spf13/cobra"
)

var (
	tokenUser uint
	tokenTTL  time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token for /users/:id routes (requires JWT_SECRET)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.JWTSecret == "" {
			return errors.New("JWT_SECRET is not set; user routes are open")
		}
		tok, err := utils.GenerateJWT(tokenUser, cfg.JWTSecret, tokenTTL)
		if err != nil {
			return err
		}
		fmt.Println(tok)
		return nil
	},
}

func init() {
	tokenCmd.Flags().UintVar(&tokenUser, "user", 1, "User id to embed in the token")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 72*time.Hour, "Token lifetime")
}
