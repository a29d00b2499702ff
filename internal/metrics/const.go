package metrics

const Namespace = "curiona_admin"

const (
	CacheTypeRedis  = "redis"
	CacheTypeMemory = "memory"
)

const (
	CacheOperationTypeIncrement = "incr"
	CacheOperationTypeGet       = "get"
	CacheOperationTypeDelete    = "delete"
)

const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultShared  = "shared"
)

const (
	LoginMethodPassword = "password"
	LoginMethodOAuth    = "oauth"
)
