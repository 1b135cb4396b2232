package wrappers

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"math"

	"github.com/samuelfneumann/gorollout/utils/floatutils"
	"gonum.org/v1/gonum/mat"
)

// JPEGRoundTrip returns an ObsTransform that encodes an observation
// as a grayscale JPEG image and immediately decodes it again. The
// round trip reproduces the compression artifacts of policies whose
// training frames were stored as JPEG, so that evaluation
// observations match what the policy saw during training.
//
// Observations are interpreted as row-major rows x cols images with
// pixel intensities in [0, 255]. Out-of-range intensities are clipped
// before encoding. The quality parameter ranges from 1 to 100
// inclusive, higher meaning less lossy.
//
// The returned transform panics if an observation's length is not
// rows * cols, and on encoding failures, which cannot occur for
// valid dimensions.
func JPEGRoundTrip(rows, cols, quality int) ObsTransform {
	if rows < 1 || cols < 1 {
		panic(fmt.Sprintf("jpegRoundTrip: invalid image dimensions "+
			"%vx%v", rows, cols))
	}

	return func(obs *mat.VecDense) *mat.VecDense {
		if obs.Len() != rows*cols {
			panic(fmt.Sprintf("jpegRoundTrip: invalid observation "+
				"size \n\twant(%v) \n\thave(%v)", rows*cols, obs.Len()))
		}

		img := image.NewGray(image.Rect(0, 0, cols, rows))
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				v := floatutils.Clip(obs.AtVec(i*cols+j), 0, 255)
				img.SetGray(j, i, color.Gray{Y: uint8(math.Round(v))})
			}
		}

		var buf bytes.Buffer
		err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality})
		if err != nil {
			panic(fmt.Sprintf("jpegRoundTrip: could not encode "+
				"observation: %v", err))
		}
		decoded, err := jpeg.Decode(&buf)
		if err != nil {
			panic(fmt.Sprintf("jpegRoundTrip: could not decode "+
				"observation: %v", err))
		}

		out := mat.NewVecDense(rows*cols, nil)
		bounds := decoded.Bounds()
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				pixel := decoded.At(bounds.Min.X+j, bounds.Min.Y+i)
				gray := color.GrayModel.Convert(pixel).(color.Gray)
				out.SetVec(i*cols+j, float64(gray.Y))
			}
		}
		return out
	}
}
