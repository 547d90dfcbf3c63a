// Package proto holds the wire definitions. Generated stubs live under
// gen/proto and are produced by `go generate ./proto`.
package proto

//go:generate protoc --proto_path=. --go_out=../gen/proto --go_opt=paths=source_relative --go-grpc_out=../gen/proto --go-grpc_opt=paths=source_relative icp/v1/icp.proto
