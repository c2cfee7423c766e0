package auth

import (
	"ecomshop_server/handling"
	"ecomshop_server/lib"
	"ecomshop_server/structs"
	"errors"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) HandleLogin(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.LoginRequest](r)
	if err != nil {
		handling.HandleError(err, "Please check your login information and try again", arm.logger, w)
		return
	}

	token, user, err := arm.authService.Login(body)
	if err != nil {
		if errors.Is(err, lib.ErrInvalidCredentials) {
			arm.logger.Warn("Login failed", gecho.Field("email", body.Email))
			gecho.Unauthorized(w, gecho.WithMessage("Invalid credentials"), gecho.Send())
			return
		}
		handling.HandleError(err, "Unable to complete login. Please try again", arm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Login successful"),
		gecho.WithData(map[string]any{
			"token": token,
			"user":  user,
		}),
		gecho.Send(),
	)
}
