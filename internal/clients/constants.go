package clients

const USER_AGENT = "commentlabeler-client/1.0 (+https://github.com/spacesedan/commentlabeler)"
