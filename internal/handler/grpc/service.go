package grpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-custody/models"
)

// ServiceName is the fully qualified name of the custody gRPC service.
const ServiceName = "custody.v1.Custody"

// Empty is the request of calls that take no arguments.
type Empty struct{}

// CustodyServer is the server API of custody.v1.Custody.
type CustodyServer interface {
	Withdraw(ctx context.Context, req *models.WithdrawRequest) (*models.BucketPayload, error)
	WithdrawConfidential(ctx context.Context, req *models.WithdrawConfidentialRequest) (*models.BucketPayload, error)
	GetBalance(ctx context.Context, req *Empty) (*models.BalanceResponse, error)
	GetCounter(ctx context.Context, req *Empty) (*models.CounterResponse, error)
}

var custodyServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CustodyServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Withdraw", Handler: unaryHandler(CustodyServer.Withdraw)},
		{MethodName: "WithdrawConfidential", Handler: unaryHandler(CustodyServer.WithdrawConfidential)},
		{MethodName: "GetBalance", Handler: unaryHandler(CustodyServer.GetBalance)},
		{MethodName: "GetCounter", Handler: unaryHandler(CustodyServer.GetCounter)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "custody/v1/custody.proto",
}

// unaryHandler adapts a CustodyServer method expression to a grpc.MethodDesc
// handler, running it through the server's interceptor chain.
func unaryHandler[Req, Resp any](call func(CustodyServer, context.Context, *Req) (*Resp, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}

		server := srv.(CustodyServer)
		if interceptor == nil {
			return call(server, ctx, in)
		}

		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodName(ctx)}
		return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
			return call(server, ctx, req.(*Req))
		})
	}
}

// methodName returns the full method of the current call, as set by the
// gRPC server in ctx.
func methodName(ctx context.Context) string {
	method, _ := grpc.Method(ctx)
	return method
}
