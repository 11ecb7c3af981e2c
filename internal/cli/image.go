package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"psteg/internal/logging"
	"psteg/pkg/config"
	pstegImage "psteg/pkg/image"
	"psteg/pkg/imagefile"
)

type encodeImageOpts struct {
	sourceImage    string
	outputImage    string
	message        messageSource
	pngCompression string
}

func encodeImageCommand(st *appState) *cobra.Command {
	opts := encodeImageOpts{}

	encImgCmd := &cobra.Command{
		Use:     "encode",
		Example: "psteg encode --image source.png --message \"meet at noon\" --output-file secret.png\npsteg encode -i source.png -f letter.txt",
		Short:   "Hide a text message in an image",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("output-file") {
				opts.outputImage = st.config.OutputFile
			}
			if !cmd.Flags().Changed("png-compression") {
				opts.pngCompression = st.config.PngCompression
			}
			opts.message.useLiteral = cmd.Flags().Changed("message")

			compression, err := config.ParsePngCompression(opts.pngCompression)
			if err != nil {
				return err
			}
			message, err := opts.message.read()
			if err != nil {
				return err
			}

			return EncodeMessageIntoImage(cmd.OutOrStdout(), st.logger, opts.sourceImage, opts.outputImage, message,
				config.ImageEncodeConfig{PngCompressionLevel: compression})
		},
	}

	encImgCmd.Flags().StringVarP(&opts.sourceImage, "image", "i", "", "Image to hide the message in, the original is not modified")
	encImgCmd.Flags().StringVarP(&opts.message.literal, "message", "m", "", "The message to encode")
	encImgCmd.Flags().StringVarP(&opts.message.file, "file", "f", "", "The text file to encode")
	encImgCmd.Flags().StringVarP(&opts.outputImage, "output-file", "o", config.DefaultOutputFile, "Name for the encoded png image that will be generated")
	encImgCmd.Flags().StringVar(&opts.pngCompression, "png-compression", "default", "Compression for output png. Options are default, none, fast, best")
	encImgCmd.Flags().BoolVar(&opts.message.normalize, "nfc", false, "Normalize the --message text to Unicode NFC before encoding it")

	MarkFlagsRequired(encImgCmd, "image")
	encImgCmd.MarkFlagsMutuallyExclusive("message", "file")
	encImgCmd.MarkFlagsOneRequired("message", "file")

	return encImgCmd
}

// EncodeMessageIntoImage hides message in the image at imageSourcePath and saves the result as a png at outputPath
func EncodeMessageIntoImage(out io.Writer, logger *logging.Logger, imageSourcePath, outputPath string, message []byte,
	iConfig config.ImageEncodeConfig) error {
	if _, err := imagefile.FormatFromPath(outputPath); err != nil {
		return err
	}

	s := NewSpinner()
	s.Prefix = "Reading source image from disk "
	s.Start()
	defer s.Stop()

	srcImage, format, err := imagefile.LoadFile(imageSourcePath)
	if err != nil {
		return fmt.Errorf("could not read image %s: %w", imageSourcePath, err)
	}
	if imagefile.IsLossy(format) {
		logger.Warn("Source image is stored in a lossy format, the encoded image will be saved as png",
			"image", imageSourcePath, "format", format)
	}

	s.Prefix = "Setting up encoder "
	iEncoder, err := pstegImage.NewImageEncoder(srcImage, iConfig)
	if err != nil {
		return err
	}
	capacity := iEncoder.Stats().CapacityBytes
	logger.Debug("Loaded source image", "image", imageSourcePath, "capacity_bytes", capacity,
		"capacity", humanize.Bytes(uint64(capacity)), "message_bytes", len(message))

	s.Prefix = "Encoding message "
	if err = iEncoder.EncodeMessage(message); err != nil {
		return fmt.Errorf("could not encode message in image: %w", err)
	}

	s.Prefix = "Generating output PNG image "
	outputFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("could not save encoded image: %w", err)
	}
	if err = iEncoder.WriteEncoded(outputFile); err != nil {
		outputFile.Close()
		return fmt.Errorf("could not save encoded image: %w", err)
	}
	if err = outputFile.Close(); err != nil {
		return fmt.Errorf("could not save encoded image: %w", err)
	}
	s.Stop()

	stats := iEncoder.Stats()
	logger.Debug("Encoding finished", "setup", stats.Setup.String(), "data_encoding", stats.DataEncoding.String(),
		"output_image_encoding", stats.OutputImageEncoding.String(), "message_bytes", stats.MessageBytes)

	fmt.Fprintf(out, "Saved encoded image as %s\n", outputPath)
	return nil
}

func decodeImageCommand(st *appState) *cobra.Command {
	var encodedImageFile string

	decodeCommand := &cobra.Command{
		Use:     "decode",
		Example: "psteg decode --image secret.png",
		Short:   "Reveal the message hidden in an image encoded by psteg",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return DecodeMessageFromImage(cmd.OutOrStdout(), st.logger, encodedImageFile)
		},
	}

	decodeCommand.Flags().StringVarP(&encodedImageFile, "image", "i", "", "Image generated by psteg to decode")
	MarkFlagsRequired(decodeCommand, "image")
	return decodeCommand
}

// DecodeMessageFromImage prints the message hidden in the image at encodedImagePath
func DecodeMessageFromImage(out io.Writer, logger *logging.Logger, encodedImagePath string) error {
	s := NewSpinner()
	s.Prefix = "Reading source image from disk "
	s.Start()
	defer s.Stop()

	srcImage, err := imagefile.LoadFileForDecoding(encodedImagePath)
	if err != nil {
		return fmt.Errorf("could not read image %s: %w", encodedImagePath, err)
	}

	s.Prefix = "Decoding message "
	decoder, err := pstegImage.NewImageDecoder(srcImage)
	if err != nil {
		return err
	}
	message, err := decoder.DecodeMessage()
	if err != nil {
		return err
	}
	s.Stop()

	stats := decoder.Stats()
	logger.Debug("Decoding finished", "data_decoding", stats.DataDecoding.String(), "message_bytes", stats.MessageBytes)

	fmt.Fprintf(out, "Secret message was:\n%s\n", message)
	return nil
}

func capacityCommand(st *appState) *cobra.Command {
	var imageFile string

	command := &cobra.Command{
		Use:     "capacity",
		Example: "psteg capacity --image source.png",
		Short:   "Show how many message bytes an image can hold",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			img, format, err := imagefile.LoadFile(imageFile)
			if err != nil {
				return fmt.Errorf("could not read image %s: %w", imageFile, err)
			}

			capacity := pstegImage.Capacity(img)
			st.logger.Debug("Measured image capacity", "image", imageFile, "format", format,
				"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
			fmt.Fprintf(cmd.OutOrStdout(), "%s can hold %d bytes (%s)\n", imageFile, capacity, humanize.Bytes(uint64(capacity)))
			return nil
		},
	}

	command.Flags().StringVarP(&imageFile, "image", "i", "", "Image to measure")
	MarkFlagsRequired(command, "image")
	return command
}
