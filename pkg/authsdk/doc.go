/*
Package authsdk provides a client SDK for the messagely HTTP API, plus the
wire types and error values the server writes.

# Client vs Session

The package is organized around two main types:

  - Client: unauthenticated operations (register, login, health)
  - Session: operations that carry a bearer token

Create a Client and obtain a Session by registering or logging in:

	client := authsdk.NewClient("http://localhost:8080")

	session, err := client.RegisterSession(ctx, authsdk.RegisterRequest{
		Username:  "alice",
		Password:  "pw1",
		FirstName: "A",
		LastName:  "L",
		Phone:     "555",
	})

	// or, for an existing user
	session, err = client.LoginSession(ctx, "alice", "pw1")

Use the Session for authenticated reads and for sending messages:

	users, err := session.ListUsers(ctx)
	msg, err := session.SendMessage(ctx, "bob", "hi bob")
	inbox, err := session.MessagesTo(ctx, "bob")

Tokens carry only the username claim. They do not expire unless the server
is configured with a TOKEN_TTL, in which case a fresh Login is needed once
the token is rejected.

# Error Handling

Every non-2xx response is decoded into an *APIError. Compare against the
predefined values with errors.Is, which matches on status and error code:

	_, err := client.Register(ctx, req)
	if errors.Is(err, authsdk.ErrDuplicateKey) {
		// username taken
	}

	_, err = client.Login(ctx, "alice", "wrong")
	if errors.Is(err, authsdk.ErrUnauthorized) {
		// bad credentials; unknown usernames look the same
	}

The server uses the same values through (*APIError).WriteError, so the
codes below are the complete set a client can see:

  - bad_request (400): malformed body or failed validation
  - unauthorized (401): bad credentials, missing or invalid token
  - not_found (404): unknown user
  - duplicate_key (409): username already registered
  - rate_limit_exceeded (429): too many requests
  - server_error (500): anything else
*/
package authsdk
