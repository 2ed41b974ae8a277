// Package proto holds the gRPC contract for the external LLM service.
// Generated code is produced by protoc via `go generate ./proto` after
// editing llm.proto.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative llm.proto
