package errors

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalServerError represents a generic internal error.
	GeneralInternalServerError ErrorCode = "general_internal_server_error"
	// GeneralBadRequestError represents a generic bad request error.
	GeneralBadRequestError ErrorCode = "general_bad_request_error"
	// GeneralNotFoundError represents a generic not found error.
	GeneralNotFoundError ErrorCode = "general_not_found_error"

	// OrderValidationError represents a submission missing required fields
	// or carrying non-positive quantities/prices.
	OrderValidationError ErrorCode = "order_validation_error"
	// OrderNotFoundError represents an operation referencing an unknown order id.
	OrderNotFoundError ErrorCode = "order_not_found"
	// OrderInvalidStateError represents a cancel/modify attempted against an
	// order that is no longer pending.
	OrderInvalidStateError ErrorCode = "order_invalid_state"
	// NoMarketDataError represents an execution-time failure when the price
	// source has no quote for the order's symbol.
	NoMarketDataError ErrorCode = "no_market_data"

	// RedisConfigError represents an error when the Redis configuration is invalid or nil.
	RedisConfigError ErrorCode = "redis_config_error"
	// RedisConnectionError represents an error when connecting to Redis.
	RedisConnectionError ErrorCode = "redis_connection_error"
	// RedisDisconnectionError represents an error when disconnecting from Redis.
	RedisDisconnectionError ErrorCode = "redis_disconnection_error"
	// RedisPingError represents an error when pinging Redis.
	RedisPingError ErrorCode = "redis_pinging_error"
	// RedisPublishError represents an error when publishing messages to channels in Redis.
	RedisPublishError ErrorCode = "redis_publish_error"

	// TickReadError represents an error when reading a tick message from the feed.
	TickReadError ErrorCode = "tick_read_error"
	// TickDecodeError represents an error when decoding a tick payload.
	TickDecodeError ErrorCode = "tick_decode_error"
)
