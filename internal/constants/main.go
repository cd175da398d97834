package constants

type contextKey string

const OperatorContextKey = contextKey("operator")
