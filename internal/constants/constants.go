package constants

// ContextKeyCaller is the gin context key holding the verified caller claims.
const ContextKeyCaller = "caller"
