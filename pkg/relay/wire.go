package relay

// Formatos trocados com o relay. O servidor define os mesmos campos nos seus DTOs;
// aqui ficam só os que o cliente envia ou lê.

type messageRequest struct {
	Message      string `json:"message"`
	ExperienceID string `json:"experienceId"`
}

type errorBody struct {
	Code           int    `json:"code"`
	Message        string `json:"message"`
	Details        string `json:"details,omitempty"`
	UpstreamStatus int    `json:"upstream_status,omitempty"`
}
