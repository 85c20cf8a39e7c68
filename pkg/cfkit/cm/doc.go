// Package cm wraps CoreMedia time values, block buffers and sample buffers.
//
// BlockBuf and SampleBuf are CoreFoundation types: they embed cf.Type and
// follow the same ownership rules. Accessors that return other buffers
// (SampleBuf.DataBuf, SampleBuf.ImageBuf, SampleBuf.FormatDesc) return
// borrowed views that are valid only while the sample buffer is.
package cm

//go:generate go run ../../../internal/cmd/cfdeclare -package cm -base cf.Type -declare cf.Declare -out zz_generated.cmtypes.go BlockBuf:CMBlockBuffer:bindings.CMBlockBufferGetTypeID SampleBuf:CMSampleBuffer:bindings.CMSampleBufferGetTypeID
