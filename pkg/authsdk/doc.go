/*
Package authsdk provides a client SDK for the Acad Co-Pilot account service.

# Overview

The service authenticates browsers with an opaque session cookie. SDKClient
carries a cookie jar, so after Signup or Login every later call on the same
client is made as that user until Logout:

	client, err := authsdk.NewSDKClient("http://localhost:8080")
	if err != nil {
		return err
	}

	// Prove ownership of the address, then create the account
	err = client.SendCode(ctx, "alice@example.com")
	err = client.VerifyCode(ctx, "alice@example.com", code)
	user, err := client.Signup(ctx, authsdk.SignupRequest{
		Email:    "alice@example.com",
		Password: "secret-password",
		Name:     "Alice",
		Role:     authsdk.RoleStudent,
	})

	// The session cookie is now held by the client
	me, err := client.Me(ctx)

	err = client.Logout(ctx)

# Error Handling

Every non-2xx response becomes an *APIError holding the status code and the
localized message the service returned:

	_, err := client.Login(ctx, email, password)
	var apiErr *authsdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
		fmt.Println(apiErr.Message)
	}

IsStatus is a shortcut for the same check.

# Thread Safety

SDKClient is safe for concurrent use, but all calls share one cookie jar and
therefore one session. Use a separate client per user.
*/
package authsdk
