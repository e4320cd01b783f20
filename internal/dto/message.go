package dto

type SendMessageRequest struct {
	SenderID      int64  `json:"senderId"`
	RecipientID   int64  `json:"recipientId"`
	Subject       string `json:"subject,omitempty"`
	Body          string `json:"body"`
	SenderAddress string `json:"senderAddress,omitempty"`
}

type ReadMessageRequest struct {
	ID            int64  `json:"id"`
	ReaderAddress string `json:"readerAddress,omitempty"`
}

type DeleteMessageRequest struct {
	ID        int64 `json:"id"`
	DeletedBy int64 `json:"deletedBy"`
}

type StatusResponse struct {
	Status string `json:"status"`
}
