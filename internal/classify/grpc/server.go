// Package grpc provides the RPC transport for classification
package grpc

import (
	"context"
	"time"

	"segmenter/internal/classify/domain"
	"segmenter/internal/classify/grpc/pb"
	svc "segmenter/internal/classify/service"
	perr "segmenter/internal/platform/errors"
	"segmenter/internal/platform/logger"

	"google.golang.org/grpc"
)

// Options bounds the transport surface
type Options struct {
	// MaxTextLen bounds review_text length during validation
	MaxTextLen int
}

// Server implements classifier.v1.Classifier over the classification
// service. Validation and error mapping mirror the HTTP transport;
// only the wire shape differs
type Server struct {
	pb.UnimplementedClassifierServer

	svc svc.Service
	opt Options
}

// NewServer builds the RPC servicer
func NewServer(s svc.Service, opt Options) *Server {
	return &Server{svc: s, opt: opt}
}

// Register attaches the servicer to a grpc registrar
func (s *Server) Register(r grpc.ServiceRegistrar) {
	pb.RegisterClassifierServer(r, s)
}

// Classify validates the request, runs the classification pipeline, and
// maps failures to grpc status codes
func (s *Server) Classify(ctx context.Context, req *pb.ClassificationRequest) (*pb.ClassificationResponse, error) {
	start := time.Now()
	log := logger.C(ctx)

	in, err := domain.ValidateFields(req.GetCustomerId(), req.GetReviewText(), s.opt.MaxTextLen)
	if err != nil {
		log.Warn().Err(err).Msg("request rejected by validator")
		return nil, perr.ToGRPC(err)
	}
	log.Info().Str("customer_id", in.CustomerID).Msg("classification request accepted")

	res, err := s.svc.Classify(ctx, in)
	if err != nil {
		return nil, perr.ToGRPC(err)
	}

	out := &pb.ClassificationResponse{
		RequestId:        logger.RequestID(ctx),
		CustomerId:       res.CustomerID,
		Segment:          res.Segment,
		Confidence:       res.Confidence,
		HistoryCount:     int32(res.HistoryCount),
		ProcessingTimeMs: float64(time.Since(start).Microseconds()) / 1000.0,
	}
	for _, rec := range res.Recent {
		out.RecentClassifications = append(out.RecentClassifications, &pb.ClassificationRecord{
			Id:          rec.ID,
			CustomerId:  rec.CustomerID,
			Segment:     rec.Segment,
			Confidence:  rec.Confidence,
			ProcessedAt: rec.ProcessedAt.UTC().Format(time.RFC3339),
		})
	}
	return out, nil
}
