// Command codecctl builds and inspects a small magic-prefixed,
// length-prefixed binary frame format, entirely out of the codec package's
// own combinators.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	codec "github.com/purefunc/codec"
)

var (
	magicHex  string
	maxLength uint32
)

// frame is the payload wrapped by the magic/length header: [magic][len
// uint32][len bytes of body].
type frame struct {
	Body codec.ByteVector
}

func frameCodec(magic codec.ByteVector, max uint32) codec.Codec[frame] {
	lengthAndBody := codec.FlatPrepend(codec.Uint32(), func(length uint32) codec.Codec[codec.HCons[codec.ByteVector, codec.HNil]] {
		if length > max {
			return codec.WithContext("length", failingCodec[codec.HCons[codec.ByteVector, codec.HNil]](
				fmt.Errorf("frame body length %d exceeds --max-length %d", length, max)))
		}
		return codec.Prepend(codec.Eager(codec.Bytes(int(length))), codec.HNilCodec())
	})

	to := func(f frame) codec.HCons[uint32, codec.HCons[codec.ByteVector, codec.HNil]] {
		return codec.Cons(uint32(f.Body.Length()), codec.Cons(f.Body, codec.HNil{}))
	}
	from := func(l codec.HCons[uint32, codec.HCons[codec.ByteVector, codec.HNil]]) frame {
		return frame{Body: l.Tail.Head}
	}
	withMagic := codec.DropLeft(codec.Constant(magic), codec.StructCodec(lengthAndBody, to, from))
	return codec.WithContext("frame", withMagic)
}

// failingCodec builds a Codec[T] whose Encode and Decode both always return
// err, for rejecting a frame whose header declares a length over the
// configured maximum before any attempt is made to read its body.
func failingCodec[T any](err error) codec.Codec[T] {
	return codec.New("reject",
		func(T) (codec.ByteVector, error) { return codec.ByteVector{}, err },
		func(codec.ByteVector) (T, codec.ByteVector, error) {
			var zero T
			return zero, codec.ByteVector{}, err
		},
	)
}

func parseMagic(hexStr string) (codec.ByteVector, error) {
	raw, err := hex.DecodeString(hexStr)
	if err != nil {
		return codec.ByteVector{}, err
	}
	return codec.FromSlice(raw), nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "codecctl",
		Short: "Build and inspect magic/length-prefixed binary frames",
	}
	root.PersistentFlags().StringVar(&magicHex, "magic", "c0decafe", "magic bytes, as hex")
	root.PersistentFlags().Uint32Var(&maxLength, "max-length", 1<<20, "maximum accepted frame body length")

	root.AddCommand(newEncodeCmd())
	root.AddCommand(newDecodeCmd())
	return root
}

func newEncodeCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "encode [input-file]",
		Short: "Wrap a file's contents in a magic/length-prefixed frame",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			magic, err := parseMagic(magicHex)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			if uint32(len(data)) > maxLength {
				return fmt.Errorf("input length %d exceeds --max-length %d", len(data), maxLength)
			}
			f := frame{Body: codec.FromSlice(data)}
			encoded, err := frameCodec(magic, maxLength).Encode(f)
			if err != nil {
				return err
			}
			if outPath == "" {
				_, err := os.Stdout.Write(encoded.ToSlice())
				return err
			}
			return os.WriteFile(outPath, encoded.ToSlice(), 0o644)
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output path (default: stdout)")
	return cmd
}

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [frame-file]",
		Short: "Unwrap a magic/length-prefixed frame and print its body length",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			magic, err := parseMagic(magicHex)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			f, err := frameCodec(magic, maxLength).DecodeValue(codec.FromSlice(data))
			if err != nil {
				return err
			}
			fmt.Printf("body length: %d bytes\n", f.Body.Length())
			return nil
		},
	}
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "codecctl:", err)
		os.Exit(1)
	}
}
